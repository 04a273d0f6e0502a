package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osumare/task-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// ExecuteJSONRequest sends body to path with the given Authorization header
// (omitted when empty) and returns the response with its body fully read.
// The response body is already closed when this returns.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	authHeader string,
	method, path, body string,
) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err, "Failed to create request")

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, data
}

// DecodeJSONResponse unmarshals body into v, failing the test on error.
func DecodeJSONResponse(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse checks that a response carries the expected status code
// and exactly the expected error message.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	body []byte,
	expectedStatus int,
	expectedError string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	var errResp shared.ErrorResponse
	DecodeJSONResponse(t, body, &errResp)
	assert.Equal(t, expectedError, errResp.Error)
}
