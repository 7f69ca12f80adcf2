package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel error
	}{
		{KindTransmission, ErrTransmission},
		{KindProtocol, ErrProtocol},
		{KindProcessingFailed, ErrProcessingFailed},
		{KindTimeout, ErrTimeout},
		{KindIncompleteResult, ErrIncompleteResult},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := fmt.Errorf("parse a.pdf: %w", &Error{Kind: tt.kind, Op: OperationGetJob})
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(err))

			for _, other := range tests {
				if other.kind != tt.kind {
					assert.NotErrorIs(t, err, other.sentinel)
				}
			}
		})
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := errTransmission(OperationSubmitJob, cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransmission)
	assert.Contains(t, err.Error(), "submit job")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestError_ProtocolIncludesBody(t *testing.T) {
	err := errProtocol(OperationSubmitJob, []byte(`{"unexpected":true}`), errors.New("response has no request_id"))
	assert.Contains(t, err.Error(), `Full response: {"unexpected":true}`)
}

func TestError_StatusCode(t *testing.T) {
	err := errStatus(OperationGetJob, 502, "502 Bad Gateway")

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, 502, e.StatusCode)
	assert.Contains(t, err.Error(), "status 502")
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestError_UnknownKind(t *testing.T) {
	err := &Error{Op: OperationGetJob, Err: errors.New("boom")}
	assert.Equal(t, "get job: boom", err.Error())
	assert.NotContains(t, err.Error(), "%!")

	err = &Error{Kind: "quota", Op: OperationSubmitJob}
	assert.Equal(t, "submit job: quota", err.Error())
	assert.Equal(t, ErrorKind("quota"), KindOf(err))
}
