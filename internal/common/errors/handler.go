// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HTTPStatus maps an internal error code to an HTTP status.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeApplicationValidationFailed:
		return http.StatusBadRequest
	case ErrCodeApplicationNotFound:
		return http.StatusNotFound
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeDatabaseQueryFailed,
		ErrCodeDatabaseUpdateFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ToResponse normalizes any error to a status code and JSON body.
func ToResponse(err error) (int, ErrorResponse) {
	stdErr := normalizeError(err)
	return HTTPStatus(stdErr.Code), ErrorResponse{
		Error:   stdErr.Message,
		Code:    string(stdErr.Code),
		Details: stdErr.Details,
	}
}

// normalizeError ensures we always have a StandardError.
func normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
