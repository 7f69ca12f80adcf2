package client

import "io"

// JobStatus enumerates async job states reported by the service.
type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Operation names a client call in error messages and logs.
type Operation string

const (
	OperationSubmitJob     Operation = "submit job"
	OperationGetJob        Operation = "get job"
	OperationWaitForJob    Operation = "wait for job"
	OperationDownloadBatch Operation = "download batch"
	OperationMergeBatches  Operation = "merge batches"
	OperationParseSync     Operation = "parse document"
)

// Document is a file ready to be uploaded.
type Document struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// SubmitResponse is the body returned by the async submission endpoint.
type SubmitResponse struct {
	RequestID string `json:"request_id"`
}

// Batch points at one downloadable page range of a completed job.
type Batch struct {
	ID          int    `json:"id,omitempty"`
	StartPage   int    `json:"start_page,omitempty"`
	EndPage     int    `json:"end_page,omitempty"`
	DownloadURL string `json:"download_url"`
}

// Job is the status of an async parse request. Only polling responses produce it.
type Job struct {
	ID             string    `json:"id"`
	Status         JobStatus `json:"status"`
	CompletedPages int       `json:"completed_pages"`
	TotalPages     int       `json:"total_pages"`
	FailureMessage string    `json:"failure_message,omitempty"`
	Batches        []Batch   `json:"batches,omitempty"`
}

// Terminal reports whether no further transitions are possible.
func (j *Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// DownloadURLs returns batch locations in the order the service listed them.
func (j *Job) DownloadURLs() []string {
	urls := make([]string, 0, len(j.Batches))
	for _, b := range j.Batches {
		urls = append(urls, b.DownloadURL)
	}
	return urls
}

// Content holds the three textual renderings of a document or element.
type Content struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

// Coordinate is a relative (0..1) point on the page.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Element is a single layout element detected on a page.
type Element struct {
	ID             int          `json:"id"`
	Category       string       `json:"category"`
	Page           int          `json:"page"`
	Content        Content      `json:"content"`
	Coordinates    []Coordinate `json:"coordinates,omitempty"`
	Base64Encoding string       `json:"base64_encoding,omitempty"`
}

// Usage reports billing counters.
type Usage struct {
	Pages int `json:"pages"`
}

// ParsedDocument is a full parse result, or one batch of it.
type ParsedDocument struct {
	API      string    `json:"api"`
	Content  Content   `json:"content"`
	Elements []Element `json:"elements"`
	Model    string    `json:"model"`
	Usage    Usage     `json:"usage"`
}

// ParseResult pairs the source file metadata with its parsed content.
type ParseResult struct {
	FileMetadata  ParseRequest    `json:"file_metadata"`
	ParsedContent *ParsedDocument `json:"parsed_content"`
}
