package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrInvalidImage means the upload did not decode to a raster image.
	ErrInvalidImage = errors.New("invalid image")
	// ErrRecognition means the OCR engine itself failed.
	ErrRecognition = errors.New("recognition failed")
	// ErrNoTextFound means the image decoded fine but OCR produced no
	// usable text. A client error, not a crash.
	ErrNoTextFound  = errors.New("no text found")
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDatabase     = errors.New("database error")
	ErrInternal     = errors.New("internal error")
)

// NewAppError constructs an AppError with a stable code.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus maps an error from the pipeline or repositories to an HTTP
// status code. Client-visible messages never carry internals.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidImage),
		errors.Is(err, ErrNoTextFound),
		errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
