package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"innflow/shared/failure"
	"innflow/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"page": "home"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"page":"home"}}`, rec.Body.String())
}

func TestWithText(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithText(rec, http.StatusOK, "BOOKING CONFIRMED!")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "BOOKING CONFIRMED!", rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "failure keeps its message",
			err:          failure.BadGateway("Failed to create guest"),
			expectedCode: http.StatusBadGateway,
			expectedBody: "Failed to create guest",
		},
		{
			name:         "plain errors are hidden",
			err:          errors.New("dial tcp 10.0.0.1:6379: connection refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			var body response.Error

			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedCode, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.expectedBody, *body.Error)
		})
	}
}

func TestCannedResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	response.WithNoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
