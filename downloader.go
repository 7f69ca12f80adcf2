package client

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
)

// DownloadBatch fetches one pre-signed batch URL and decodes it. No auth header is sent.
func (c *client) DownloadBatch(ctx context.Context, url string) (*ParsedDocument, error) {
	if url == "" {
		return nil, ErrEmptyDownloadURL
	}

	resp, err := c.transferClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return nil, errTransmission(OperationDownloadBatch, err)
	}

	if !resp.IsSuccess() {
		return nil, errStatus(OperationDownloadBatch, resp.StatusCode(), resp.Status())
	}

	var part ParsedDocument
	if err := json.Unmarshal(resp.Body(), &part); err != nil {
		return nil, errProtocol(OperationDownloadBatch, nil, err)
	}

	return &part, nil
}

// MergeBatches downloads urls in order and concatenates them into one document.
// A batch that cannot be fetched or decoded is skipped. The first batch provides
// api and model; without both the merge fails with ErrIncompleteResult.
func (c *client) MergeBatches(ctx context.Context, urls []string) (*ParsedDocument, error) {
	merged := &ParsedDocument{Elements: []Element{}}
	var content [3]strings.Builder

	for idx, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.logger.InfoContext(ctx, "Downloading part", slog.Int("part", idx+1), slog.Int("of", len(urls)))

		part, err := c.DownloadBatch(ctx, url)
		if err != nil {
			c.logger.WarnContext(ctx, "Skipping batch", slog.Int("part", idx+1), slog.Any("error", err))
			continue
		}

		if idx == 0 {
			merged.API = part.API
			merged.Model = part.Model
		}

		content[0].WriteString(part.Content.HTML)
		content[1].WriteString(part.Content.Markdown)
		content[2].WriteString(part.Content.Text)
		merged.Elements = append(merged.Elements, part.Elements...)
		merged.Usage.Pages += part.Usage.Pages
	}

	if merged.API == "" || merged.Model == "" {
		return nil, &Error{
			Kind: KindIncompleteResult,
			Op:   OperationMergeBatches,
			Err:  errors.New("first batch did not provide api and model"),
		}
	}

	merged.Content = Content{
		HTML:     content[0].String(),
		Markdown: content[1].String(),
		Text:     content[2].String(),
	}

	c.logger.InfoContext(ctx, "All parts downloaded and merged",
		slog.Int("batches", len(urls)),
		slog.Int("pages", merged.Usage.Pages),
	)

	return merged, nil
}
