//go:build unit

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status code and decodes the "data" payload
// of the success envelope into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &envelope)
		if !assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
			return
		}
		err = json.Unmarshal(envelope.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode data payload: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status code and the error envelope's
// top-level message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
