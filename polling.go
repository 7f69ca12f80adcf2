package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// GetJob fetches the current status of an async job.
func (c *client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	if jobID == "" {
		return nil, ErrEmptyJobID
	}

	resp, err := c.restyClient.R().
		SetContext(ctx).
		Get(EndpointRequests + "/" + url.PathEscape(jobID))

	if err != nil {
		return nil, errTransmission(OperationGetJob, err)
	}

	if !resp.IsSuccess() {
		return nil, errStatus(OperationGetJob, resp.StatusCode(), resp.Status())
	}

	var job Job
	if err := json.Unmarshal(resp.Body(), &job); err != nil {
		return nil, errProtocol(OperationGetJob, resp.Body(), err)
	}
	if job.ID == "" {
		job.ID = jobID
	}

	return &job, nil
}

// WaitForJob polls the job every pollInterval until it completes, fails, or
// maxAttempts queries have been made. Any failed query ends the wait.
func (c *client) WaitForJob(ctx context.Context, jobID string, pollInterval time.Duration, maxAttempts int) (*Job, error) {
	if jobID == "" {
		return nil, ErrEmptyJobID
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}

		switch job.Status {
		case JobStatusCompleted:
			c.logger.InfoContext(ctx, "Processing complete",
				slog.String("job", jobID),
				slog.String("progress", progress(job)),
				slog.Int("batches", len(job.Batches)),
			)
			return job, nil
		case JobStatusFailed:
			var cause error
			if job.FailureMessage != "" {
				cause = fmt.Errorf("job %s: %s", jobID, job.FailureMessage)
			} else {
				cause = fmt.Errorf("job %s", jobID)
			}
			return nil, &Error{Kind: KindProcessingFailed, Op: OperationWaitForJob, Err: cause}
		}

		c.logger.InfoContext(ctx, "Processing...",
			slog.String("job", jobID),
			slog.String("progress", progress(job)),
			slog.String("attempt", fmt.Sprintf("%d/%d", attempt, maxAttempts)),
		)

		if attempt == maxAttempts {
			break
		}
		if err := waitForNextPoll(ctx, pollInterval); err != nil {
			return nil, fmt.Errorf("waiting for job %s cancelled: %w", jobID, err)
		}
	}

	return nil, &Error{Kind: KindTimeout, Op: OperationWaitForJob, Err: fmt.Errorf("job %s still running after %d attempts", jobID, maxAttempts)}
}

// waitForNextPoll blocks for d or until ctx is done.
func waitForNextPoll(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func progress(job *Job) string {
	return fmt.Sprintf("%d/%d", job.CompletedPages, job.TotalPages)
}
