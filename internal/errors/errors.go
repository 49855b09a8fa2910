package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrJobNotFound is returned when a job posting does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotJobOwner is returned when the principal may not mutate a job.
	ErrNotJobOwner = errors.New("not authorized to modify this job")
	// ErrDuplicateUser is returned when a unique user field is already taken.
	ErrDuplicateUser = errors.New("username or email already registered")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotJobOwner):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_JOB_OWNER")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
