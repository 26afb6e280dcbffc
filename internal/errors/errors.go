package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when required request fields are absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidStatus is returned when a review status is not Approved or Rejected.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidCredentials is returned when login fields do not match a user.
	ErrInvalidCredentials = errors.New("invalid credentials or role mismatch")
	// ErrRequestNotFound is returned when no request exists with the given id.
	ErrRequestNotFound = errors.New("request not found")
	// ErrAlreadyReviewed is returned when reviewing a non-pending request.
	ErrAlreadyReviewed = errors.New("request already reviewed")
	// ErrPassAlreadyUsed is returned when marking an already-used pass.
	ErrPassAlreadyUsed = errors.New("pass already used")
	// ErrSaveFailed is returned when the dataset could not be persisted.
	ErrSaveFailed = errors.New("failed to save data")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
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
		Success: false,
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. State-transition
// conflicts surface as 400, matching the wire contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrRequestNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND")
	case errors.Is(err, ErrAlreadyReviewed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_REVIEWED")
	case errors.Is(err, ErrPassAlreadyUsed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASS_ALREADY_USED")
	case errors.Is(err, ErrSaveFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "STORAGE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
