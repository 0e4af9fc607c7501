package nvisy

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Unwrap(t *testing.T) {
	status := &StatusError{StatusCode: http.StatusNotFound, Method: "GET", URL: "https://api.nvisy.com/files/x", Message: "file not found"}
	err := fmt.Errorf("lookup: %w", newError(KindTransport, "GET /files/x", status))

	assert.True(t, IsKind(err, KindTransport))
	assert.False(t, IsKind(err, KindAPI))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	var se *StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "file not found", se.Message)
}

func TestError_Error(t *testing.T) {
	err := newError(KindAPI, "POST /workspaces/1/files", ErrEmptyUpload)
	assert.Equal(t, "nvisy: POST /workspaces/1/files: api error: upload returned no files", err.Error())
	assert.ErrorIs(t, err, ErrEmptyUpload)

	bare := &Error{Kind: KindIO, Err: errors.New("disk full")}
	assert.Equal(t, "nvisy: i/o error: disk full", bare.Error())
}

func TestStatusCode_NonHTTPError(t *testing.T) {
	assert.Equal(t, 0, StatusCode(errors.New("boom")))
	assert.Equal(t, 0, StatusCode(nil))
	assert.False(t, IsNotFound(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "workspace not found",
		errorMessage(404, []byte(`{"error":"not_found","message":"workspace not found"}`)))
	assert.Equal(t, "rate_limited", errorMessage(429, []byte(`{"error":"rate_limited"}`)))
	assert.Equal(t, "upstream exploded", errorMessage(502, []byte("upstream exploded")))
	assert.Equal(t, "Service Unavailable", errorMessage(503, nil))
}
