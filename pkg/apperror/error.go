// Package apperror carries usecase failures to middleware.ErrorHandler,
// which renders them into the response envelope.
package apperror

import (
	"errors"
	"net/http"
)

// AppError is a usecase failure with the HTTP status and message the
// client sees, e.g. 404 "Candidate profile not found" or 400 "Job already saved".
// Err keeps the underlying cause (driver or media store error) for the log only.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal hides err behind a generic message; repository failures end up here.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Upstream is a 500 whose message reaches the client, for a media store
// that is unconfigured or rejected the upload.
func Upstream(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
