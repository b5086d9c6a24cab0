package types

import (
	"errors"
	"net/http"

	appErr "github.com/folioforge/engine/pkg/errors"
)

// StatusOf maps an error's stable code to the HTTP status the handlers
// return. Persistence and upstream failures all collapse to 500.
func StatusOf(err error) int {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict:
		return http.StatusConflict
	case appErr.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// FromAppError builds the client-facing error payload. Internal detail never
// reaches the client: 5xx errors are reduced to a generic message and the
// full error is logged at the handler boundary.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return &APIError{Code: string(appErr.CodeInternal), Message: "internal error"}
	}
	if StatusOf(err) == 500 {
		return &APIError{Code: string(ae.Code), Message: "internal error"}
	}
	return &APIError{Code: string(ae.Code), Message: ae.Message, Details: ae.Meta}
}
