package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// Domain errors
	ErrorTypeValidation
	ErrorTypeNotFound

	// Weather provider errors
	ErrorTypeMissingCredential
	ErrorTypeUnauthorized
	ErrorTypeRateLimited
	ErrorTypeNetworkUnavailable
	ErrorTypeUnknownFailure

	// Geolocation errors
	ErrorTypeUnsupported
	ErrorTypePermissionDenied
	ErrorTypePositionUnavailable
	ErrorTypeTimedOut

	// Infrastructure errors
	ErrorTypeDatabase
	ErrorTypeExternalAPI

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeMissingCredential:
		return "MISSING_CREDENTIAL_ERROR"
	case ErrorTypeUnauthorized:
		return "UNAUTHORIZED_ERROR"
	case ErrorTypeRateLimited:
		return "RATE_LIMITED_ERROR"
	case ErrorTypeNetworkUnavailable:
		return "NETWORK_UNAVAILABLE_ERROR"
	case ErrorTypeUnknownFailure:
		return "UNKNOWN_FAILURE_ERROR"
	case ErrorTypeUnsupported:
		return "GEOLOCATION_UNSUPPORTED_ERROR"
	case ErrorTypePermissionDenied:
		return "PERMISSION_DENIED_ERROR"
	case ErrorTypePositionUnavailable:
		return "POSITION_UNAVAILABLE_ERROR"
	case ErrorTypeTimedOut:
		return "TIMED_OUT_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters and tests
const (
	ValidationError          = ErrorTypeValidation
	NotFoundError            = ErrorTypeNotFound
	MissingCredentialError   = ErrorTypeMissingCredential
	UnauthorizedError        = ErrorTypeUnauthorized
	RateLimitedError         = ErrorTypeRateLimited
	NetworkUnavailableError  = ErrorTypeNetworkUnavailable
	UnknownFailureError      = ErrorTypeUnknownFailure
	UnsupportedError         = ErrorTypeUnsupported
	PermissionDeniedError    = ErrorTypePermissionDenied
	PositionUnavailableError = ErrorTypePositionUnavailable
	TimedOutError            = ErrorTypeTimedOut
	DatabaseError            = ErrorTypeDatabase
	ExternalAPIError         = ErrorTypeExternalAPI
	ConfigurationError       = ErrorTypeConfiguration
)

// User-facing messages shared by the weather client and the geolocation adapter.
const (
	MsgMissingCredential   = "API key is not configured. Please add OPENWEATHERMAP_API_KEY to your environment."
	MsgUnauthorized        = "Invalid API key. Please check your OpenWeatherMap API key."
	MsgRateLimited         = "API rate limit exceeded. Please try again later."
	MsgNetworkUnavailable  = "Network error. Please check your internet connection."
	MsgWeatherFailure      = "Failed to fetch weather data. Please try again."
	MsgForecastFailure     = "Failed to fetch forecast data. Please try again."
	MsgUnsupported         = "Geolocation is not supported in this environment."
	MsgPermissionDenied    = "Location permission denied. Please enable location access and try again."
	MsgPositionUnavailable = "Location information is unavailable."
	MsgTimedOut            = "Location request timed out. Please try again."
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewCityNotFoundError embeds the searched city in the user message.
func NewCityNotFoundError(city string) *AppError {
	return New(NotFoundError, fmt.Sprintf("City %q not found. Please check the spelling and try again.", city))
}

// Weather Provider Error Constructors
func NewMissingCredentialError() *AppError {
	return New(MissingCredentialError, MsgMissingCredential)
}

func NewUnauthorizedError() *AppError {
	return New(UnauthorizedError, MsgUnauthorized)
}

func NewRateLimitedError() *AppError {
	return New(RateLimitedError, MsgRateLimited)
}

func NewNetworkUnavailableError(cause error) *AppError {
	return Wrap(NetworkUnavailableError, MsgNetworkUnavailable, cause)
}

func NewUnknownFailureError(message string, cause error) *AppError {
	return Wrap(UnknownFailureError, message, cause)
}

// Geolocation Error Constructors
func NewUnsupportedError() *AppError {
	return New(UnsupportedError, MsgUnsupported)
}

func NewPermissionDeniedError(cause error) *AppError {
	return Wrap(PermissionDeniedError, MsgPermissionDenied, cause)
}

func NewPositionUnavailableError(cause error) *AppError {
	return Wrap(PositionUnavailableError, MsgPositionUnavailable, cause)
}

func NewTimedOutError(cause error) *AppError {
	return Wrap(TimedOutError, MsgTimedOut, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// UserMessage returns the human-readable message shown next to the search control.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return MsgWeatherFailure
}

// IsGeolocationError reports whether err carries one of the geolocation reasons.
func IsGeolocationError(err error) bool {
	switch TypeOf(err) {
	case UnsupportedError, PermissionDeniedError, PositionUnavailableError, TimedOutError:
		return true
	default:
		return false
	}
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
