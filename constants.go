package client

import "time"

const (
	ServiceName         = "upstage"
	DefaultBaseURL      = "https://api.upstage.ai/v1/document-ai"
	DefaultTimeout      = 5 * time.Minute
	DefaultPollInterval = 10 * time.Second
	DefaultMaxAttempts  = 300
	APIVersion          = "v1"
)

// API endpoints
const (
	EndpointDocumentParse      = "/document-parse"
	EndpointAsyncDocumentParse = "/async/document-parse"
	EndpointRequests           = "/requests"
)

// Multipart fields sent with every parse request.
const (
	FieldDocument       = "document"
	FieldOCR            = "ocr"
	FieldBase64Encoding = "base64_encoding"
	FieldOutputFormats  = "output_formats"

	OCRForce             = "force"
	Base64EncodingTables = `["table"]`
	OutputFormatsHTMLMD  = `["html", "markdown"]`
)

// parseFormData is the fixed option set shared by the sync and async endpoints.
func parseFormData() map[string]string {
	return map[string]string{
		FieldOCR:            OCRForce,
		FieldBase64Encoding: Base64EncodingTables,
		FieldOutputFormats:  OutputFormatsHTMLMD,
	}
}
