package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserAlreadyExists is returned when a signup email is already registered.
	ErrUserAlreadyExists = errors.New("User already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// One generic message for both cases so callers cannot probe registered emails.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrNoticeNotFound is returned when a notice id does not resolve.
	ErrNoticeNotFound = errors.New("Notice not found")
	// ErrMissingFields is returned when a required notice field is absent.
	ErrMissingFields = errors.New("Missing fields")
	// ErrInvalidNoticeType is returned when type is outside the allowed set.
	ErrInvalidNoticeType = errors.New("Invalid notice type")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is an
// internal failure and surfaces as a generic 500; the cause stays server-side.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidNoticeType):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoticeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error")
	}
}
