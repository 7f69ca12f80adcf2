package client

import (
	"context"
	"time"
)

// Info provides metadata about the client
type Info interface {
	Name() string
	Version() string
}

// Submitter starts async parse jobs
type Submitter interface {
	SubmitJob(ctx context.Context, doc Document) (string, error)
}

// Poller tracks async parse jobs until they reach a terminal state
type Poller interface {
	GetJob(ctx context.Context, jobID string) (*Job, error)
	WaitForJob(ctx context.Context, jobID string, pollInterval time.Duration, maxAttempts int) (*Job, error)
}

// Merger downloads result batches and assembles them into one document
type Merger interface {
	DownloadBatch(ctx context.Context, url string) (*ParsedDocument, error)
	MergeBatches(ctx context.Context, urls []string) (*ParsedDocument, error)
}

// DirectParser parses a document in a single blocking request
type DirectParser interface {
	ParseSync(ctx context.Context, doc Document) (*ParsedDocument, error)
}

// Client combines all document-parse operations
type Client interface {
	Info
	Submitter
	Poller
	Merger
	DirectParser
}

// DocumentParser is the strategy contract: parse one file, return metadata and content.
type DocumentParser interface {
	ParseDocument(ctx context.Context, path string) (*ParseResult, error)
}
