package errors

import (
	"errors"
	"fmt"
)

// Domain errors - these represent business rule violations
var (
	// Statistics
	ErrAggregationFailure = errors.New("aggregation failure")

	// Publicity validation
	ErrPublicityNotFound = errors.New("publicity not found")
	ErrInvalidDateWindow = errors.New("start date must not be after end date")

	// Generic
	ErrNotFound   = errors.New("resource not found")
	ErrInternal   = errors.New("internal server error")
	ErrBadRequest = errors.New("bad request")
)

// AppError wraps errors with additional context for HTTP responses
type AppError struct {
	Err        error  // The underlying error
	Message    string // User-friendly message
	Code       string // Machine-readable error code
	StatusCode int    // HTTP status code
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAggregationError wraps a failure raised while composing a statistics
// report. The underlying message is deliberately kept in the response body;
// the caller always receives a 500, never a partial result.
func NewAggregationError(err error) *AppError {
	return &AppError{
		Err:        fmt.Errorf("%w: %w", ErrAggregationFailure, err),
		Message:    err.Error(),
		Code:       "AGGREGATION_FAILURE",
		StatusCode: 500,
	}
}

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "BAD_REQUEST",
		StatusCode: 400,
	}
}

func NewNotFoundError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "NOT_FOUND",
		StatusCode: 404,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "An unexpected error occurred",
		Code:       "INTERNAL_ERROR",
		StatusCode: 500,
	}
}
