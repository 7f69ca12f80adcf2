package client

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPath        = errors.New("file path cannot be empty")
	ErrEmptyJobID       = errors.New("job id cannot be empty")
	ErrEmptyDownloadURL = errors.New("download url cannot be empty")
	ErrNilReader        = errors.New("reader cannot be nil")
	ErrNilClient        = errors.New("client cannot be nil")
)

// ErrorKind classifies failures so callers can branch on the category.
type ErrorKind string

const (
	KindTransmission     ErrorKind = "transmission"
	KindProtocol         ErrorKind = "protocol"
	KindProcessingFailed ErrorKind = "processing_failed"
	KindTimeout          ErrorKind = "timeout"
	KindIncompleteResult ErrorKind = "incomplete_result"
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrTransmission     = errors.New("transmission error")
	ErrProtocol         = errors.New("protocol error")
	ErrProcessingFailed = errors.New("document processing failed")
	ErrTimeout          = errors.New("document processing timed out")
	ErrIncompleteResult = errors.New("no valid data retrieved from batches")
)

var kindSentinels = map[ErrorKind]error{
	KindTransmission:     ErrTransmission,
	KindProtocol:         ErrProtocol,
	KindProcessingFailed: ErrProcessingFailed,
	KindTimeout:          ErrTimeout,
	KindIncompleteResult: ErrIncompleteResult,
}

// Error is returned by every client operation that talks to the service.
type Error struct {
	Kind       ErrorKind
	Op         Operation
	StatusCode int    // HTTP status, 0 when no response was received
	Body       string // raw response body for protocol violations
	Err        error
}

func (e *Error) Error() string {
	desc := string(e.Kind)
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		desc = sentinel.Error()
	}
	msg := string(e.Op)
	if desc != "" {
		msg += ": " + desc
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += fmt.Sprintf(". Full response: %s", e.Body)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func errTransmission(op Operation, err error) error {
	return &Error{Kind: KindTransmission, Op: op, Err: err}
}

// errStatus reports a non-success HTTP status as a transmission failure.
func errStatus(op Operation, statusCode int, status string) error {
	return &Error{Kind: KindTransmission, Op: op, StatusCode: statusCode, Err: errors.New(status)}
}

func errProtocol(op Operation, body []byte, err error) error {
	return &Error{Kind: KindProtocol, Op: op, Body: string(body), Err: err}
}
