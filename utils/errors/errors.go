package errors

import (
	"fmt"
	"net/http"
)

// APIError is the structured error returned by every failing endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidInput = NewAPIError("INVALID_INPUT", "Invalid request data", http.StatusBadRequest)
	ErrNotFound     = NewAPIError("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrInternal     = NewAPIError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
)

// NotFound reports a missing user, project or event with a human-readable detail.
func NotFound(message string) *APIError {
	return NewAPIError("NOT_FOUND", message, http.StatusNotFound)
}

// Conflict reports a duplicate watchlist addition. Surfaced as 400 rather than
// 409 to keep the public contract the frontend already depends on.
func Conflict(message string) *APIError {
	return NewAPIError("CONFLICT", message, http.StatusBadRequest)
}

// Internal wraps a store failure, attaching the underlying error text.
func Internal(message string, err error) *APIError {
	if err != nil {
		return NewAPIError("INTERNAL_SERVER_ERROR", message, http.StatusInternalServerError, err.Error())
	}
	return NewAPIError("INTERNAL_SERVER_ERROR", message, http.StatusInternalServerError)
}

func Wrap(err error, code, message string, status int) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}
