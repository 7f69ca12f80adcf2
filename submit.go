package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-resty/resty/v2"
)

// SubmitJob uploads a document to the async endpoint and returns the job id.
func (c *client) SubmitJob(ctx context.Context, doc Document) (string, error) {
	resp, err := c.postDocument(ctx, OperationSubmitJob, EndpointAsyncDocumentParse, doc)
	if err != nil {
		return "", err
	}

	var result SubmitResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", errProtocol(OperationSubmitJob, resp.Body(), err)
	}

	if result.RequestID == "" {
		return "", errProtocol(OperationSubmitJob, resp.Body(), errors.New("response has no request_id"))
	}

	return result.RequestID, nil
}

// ParseSync uploads a document and returns the parsed content in one call.
func (c *client) ParseSync(ctx context.Context, doc Document) (*ParsedDocument, error) {
	resp, err := c.postDocument(ctx, OperationParseSync, EndpointDocumentParse, doc)
	if err != nil {
		return nil, err
	}

	var result ParsedDocument
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, errProtocol(OperationParseSync, resp.Body(), err)
	}

	return &result, nil
}

// postDocument sends doc as multipart form data with the fixed parse options.
func (c *client) postDocument(ctx context.Context, op Operation, endpoint string, doc Document) (*resty.Response, error) {
	if doc.Reader == nil {
		return nil, ErrNilReader
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetMultipartField(FieldDocument, doc.Name, contentType, doc.Reader).
		SetFormData(parseFormData()).
		Post(endpoint)

	if err != nil {
		return nil, errTransmission(op, err)
	}

	if !resp.IsSuccess() {
		return nil, errStatus(op, resp.StatusCode(), resp.Status())
	}

	return resp, nil
}
