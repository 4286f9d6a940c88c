package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Validation", err: errors.NewValidationError("bad"), expected: http.StatusBadRequest},
		{name: "NotFound", err: errors.NewCityNotFoundError("Atlantis"), expected: http.StatusNotFound},
		{name: "RateLimited", err: errors.NewRateLimitedError(), expected: http.StatusTooManyRequests},
		{name: "MissingCredential", err: errors.NewMissingCredentialError(), expected: http.StatusServiceUnavailable},
		{name: "NetworkUnavailable", err: errors.NewNetworkUnavailableError(nil), expected: http.StatusServiceUnavailable},
		{name: "ExternalAPI", err: errors.NewExternalAPIError("redis", nil), expected: http.StatusServiceUnavailable},
		{name: "Unauthorized", err: errors.NewUnauthorizedError(), expected: http.StatusBadGateway},
		{name: "UnknownFailure", err: errors.NewUnknownFailureError(errors.MsgWeatherFailure, nil), expected: http.StatusBadGateway},
		{name: "WrappedNotFound", err: fmt.Errorf("lookup city: %w", errors.NewCityNotFoundError("X")), expected: http.StatusNotFound},
		{name: "Database", err: errors.NewDatabaseError("down", nil), expected: http.StatusInternalServerError},
		{name: "Foreign", err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func TestHandleError_Messages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := mocks.NewLogger()
	server := &HTTPServerAdapter{logger: logger}

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "Validation", err: errors.NewValidationError("city cannot be empty"), expected: "city cannot be empty"},
		{name: "RateLimited", err: errors.NewRateLimitedError(), expected: errors.MsgRateLimited},
		{name: "ExternalAPIHidden", err: errors.NewExternalAPIError("redis get operation failed", nil), expected: "External service unavailable"},
		{name: "DatabaseHidden", err: errors.NewDatabaseError("connection refused", nil), expected: "Internal server error"},
		{name: "ForeignHidden", err: assert.AnError, expected: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", func(c *gin.Context) { server.handleError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.Error)
		})
	}

	assert.True(t, logger.HasMessage("error", "Request failed"))
}
