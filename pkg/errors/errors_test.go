package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(NetworkUnavailableError, "network down", cause)
			},
			expected: "NETWORK_UNAVAILABLE_ERROR: network down (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := NewNetworkUnavailableError(cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewRateLimitedError().Unwrap())
}

func TestNewCityNotFoundError_EmbedsCity(t *testing.T) {
	err := NewCityNotFoundError("Atlantis")

	assert.Equal(t, NotFoundError, err.Type)
	assert.Contains(t, err.Message, `"Atlantis"`)
	assert.True(t, IsNotFoundError(err))
}

func TestTypeOf_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("current weather: %w", NewUnauthorizedError())

	assert.Equal(t, UnauthorizedError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "rate_limited", err: NewRateLimitedError(), expected: MsgRateLimited},
		{name: "wrapped_missing_key", err: fmt.Errorf("forecast: %w", NewMissingCredentialError()), expected: MsgMissingCredential},
		{name: "timed_out", err: NewTimedOutError(nil), expected: MsgTimedOut},
		{name: "foreign_error", err: fmt.Errorf("boom"), expected: MsgWeatherFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}

func TestIsGeolocationError(t *testing.T) {
	assert.True(t, IsGeolocationError(NewUnsupportedError()))
	assert.True(t, IsGeolocationError(NewPermissionDeniedError(nil)))
	assert.True(t, IsGeolocationError(NewPositionUnavailableError(nil)))
	assert.True(t, IsGeolocationError(NewTimedOutError(nil)))
	assert.False(t, IsGeolocationError(NewRateLimitedError()))
	assert.False(t, IsGeolocationError(nil))
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "RATE_LIMITED_ERROR", RateLimitedError.String())
	assert.Equal(t, "PERMISSION_DENIED_ERROR", PermissionDeniedError.String())
	assert.Equal(t, "CONFIGURATION_ERROR", ConfigurationError.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(999).String())
}
