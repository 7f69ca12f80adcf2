package client

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type client struct {
	restyClient    *resty.Client
	transferClient *resty.Client
	apiKey         string
	logger         *slog.Logger
}

var _ Client = (*client)(nil)

type Option func(*client)

func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		if baseURL != "" {
			c.restyClient.SetBaseURL(baseURL)
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.restyClient.SetTimeout(timeout)
			if c.transferClient != nil {
				c.transferClient.SetTimeout(timeout)
			}
		}
	}
}

// WithRestyClient allows callers to provide a preconfigured API client.
// The bearer header is applied on top of it.
func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

// WithTransferClient overrides the client used for pre-signed batch downloads.
func WithTransferClient(transfer *resty.Client) Option {
	return func(c *client) {
		if transfer != nil {
			c.transferClient = transfer
		}
	}
}

// WithLogger sets the logger used for poll progress and skipped batches.
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client authorized with apiKey. Requests are never retried.
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		restyClient:    newDefaultAPIClient(),
		transferClient: newTransferClient(DefaultTimeout),
		apiKey:         apiKey,
		logger:         slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.restyClient.SetHeader("Authorization", "Bearer "+c.apiKey)

	return c
}

// Name returns the service name.
func (c *client) Name() string {
	return ServiceName
}

// Version returns the API version.
func (c *client) Version() string {
	return APIVersion
}

func newDefaultAPIClient() *resty.Client {
	return resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(DefaultTimeout).
		SetRetryCount(0)
}

func newTransferClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
}
