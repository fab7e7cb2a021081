package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNetwork    = "NETWORK_ERROR"
	ErrCodeServer     = "SERVER_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
)

// ValidationError is local and field-scoped; it never reaches the network.
func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

// NetworkError covers transport failures where no HTTP response exists.
func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, 0)
}

// ServerError carries the non-2xx status and, when present, the
// server-supplied message.
func ServerError(message string, statusCode int) *AppError {
	return NewAppError(ErrCodeServer, message, statusCode)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

func IsValidation(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == ErrCodeValidation
	}

	return false
}

// WithFallback fills an empty error message with a per-operation default,
// preferring whatever text the server supplied.
func WithFallback(err error, fallback string) error {
	if err == nil {
		return nil
	}

	if appErr, ok := IsAppError(err); ok {
		if appErr.Message == "" {
			appErr.Message = fallback
		}

		return appErr
	}

	return NetworkError(fallback).WithError(err)
}
