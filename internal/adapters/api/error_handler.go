package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/ports"
	errorspkg "weatherlookup.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusCode maps an application error to the HTTP status of a stateless request
func StatusCode(err error) int {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest
	case errorspkg.NotFoundError:
		return http.StatusNotFound
	case errorspkg.RateLimitedError:
		return http.StatusTooManyRequests
	case errorspkg.MissingCredentialError, errorspkg.NetworkUnavailableError, errorspkg.ExternalAPIError:
		return http.StatusServiceUnavailable
	case errorspkg.UnauthorizedError, errorspkg.UnknownFailureError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the error response. Lookup and validation errors carry
// their user message; infrastructure errors are hidden.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	status := StatusCode(err)

	var message string
	var appErr *errorspkg.AppError
	switch {
	case !errors.As(err, &appErr):
		message = "Internal server error"
	case appErr.Type == errorspkg.ValidationError:
		message = appErr.Message
	case appErr.Type == errorspkg.ExternalAPIError:
		message = "External service unavailable"
	case status == http.StatusInternalServerError:
		message = "Internal server error"
	default:
		message = errorspkg.UserMessage(err)
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			ports.F("path", c.FullPath()),
			ports.F("status", status),
			ports.F("error", err.Error()))
	}

	c.JSON(status, ErrorResponse{Error: message})
}
