package client

import (
	"context"
	"fmt"
	"os"
	"time"
)

// AsyncParser submits a job, waits for it and merges the result batches.
// Use it for documents too large for the synchronous endpoint.
type AsyncParser struct {
	client       Client
	pollInterval time.Duration
	maxAttempts  int
}

var _ DocumentParser = (*AsyncParser)(nil)

type AsyncOption func(*AsyncParser)

// WithPollInterval sets the wait between status queries.
func WithPollInterval(interval time.Duration) AsyncOption {
	return func(p *AsyncParser) {
		if interval > 0 {
			p.pollInterval = interval
		}
	}
}

// WithMaxAttempts caps the number of status queries before ErrTimeout.
func WithMaxAttempts(attempts int) AsyncOption {
	return func(p *AsyncParser) {
		if attempts > 0 {
			p.maxAttempts = attempts
		}
	}
}

func NewAsyncParser(c Client, opts ...AsyncOption) *AsyncParser {
	p := &AsyncParser{
		client:       c,
		pollInterval: DefaultPollInterval,
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *AsyncParser) ParseDocument(ctx context.Context, path string) (*ParseResult, error) {
	if p.client == nil {
		return nil, ErrNilClient
	}

	req, err := NewParseRequest(path)
	if err != nil {
		return nil, err
	}

	jobID, err := submitFile(ctx, p.client, req)
	if err != nil {
		return nil, wrapParseError(req, err)
	}

	job, err := p.client.WaitForJob(ctx, jobID, p.pollInterval, p.maxAttempts)
	if err != nil {
		return nil, wrapParseError(req, err)
	}

	doc, err := p.client.MergeBatches(ctx, job.DownloadURLs())
	if err != nil {
		return nil, wrapParseError(req, err)
	}

	return &ParseResult{FileMetadata: req, ParsedContent: doc}, nil
}

// SyncParser parses with one blocking request. Suited to small documents.
type SyncParser struct {
	client Client
}

var _ DocumentParser = (*SyncParser)(nil)

func NewSyncParser(c Client) *SyncParser {
	return &SyncParser{client: c}
}

func (p *SyncParser) ParseDocument(ctx context.Context, path string) (*ParseResult, error) {
	if p.client == nil {
		return nil, ErrNilClient
	}

	req, err := NewParseRequest(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", req.Name, err)
	}
	defer f.Close()

	doc, err := p.client.ParseSync(ctx, Document{Name: req.Name, ContentType: req.ContentType, Reader: f})
	if err != nil {
		return nil, wrapParseError(req, err)
	}

	return &ParseResult{FileMetadata: req, ParsedContent: doc}, nil
}

func submitFile(ctx context.Context, c Client, req ParseRequest) (string, error) {
	f, err := os.Open(req.Path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return c.SubmitJob(ctx, Document{Name: req.Name, ContentType: req.ContentType, Reader: f})
}

func wrapParseError(req ParseRequest, err error) error {
	return fmt.Errorf("parse %s: %w", req.Name, err)
}
