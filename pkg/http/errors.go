package http

import (
	"fmt"
	"net/http"
)

// AppError carries a client-facing message plus the HTTP status it maps to.
// The wrapped error stays server-side for logging.
type AppError struct {
	Msg    string `json:"msg"`
	Status int    `json:"-"`
	Err    error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error { return e.Err }

// WithError wraps an underlying error for server-side diagnosis.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NewAppError creates an application error with an explicit status.
func NewAppError(msg string, status int) *AppError {
	return &AppError{Msg: msg, Status: status}
}

// BadRequestError creates a 400 error.
func BadRequestError(msg string) *AppError {
	return NewAppError(msg, http.StatusBadRequest)
}

// BadRequestErrorf creates a 400 error with formatting.
func BadRequestErrorf(format string, a ...interface{}) *AppError {
	return BadRequestError(fmt.Sprintf(format, a...))
}

// NotFoundError creates a 404 error.
func NotFoundError(msg string) *AppError {
	return NewAppError(msg, http.StatusNotFound)
}

// InternalError creates a 500 error.
func InternalError(msg string) *AppError {
	return NewAppError(msg, http.StatusInternalServerError)
}
