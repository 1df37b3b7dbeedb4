// Package errors provides domain-specific error types for the Elara
// engagement core.
//
// Failures map onto AppError codes: duplicate ingestion and invalid
// payloads are surfaced to callers, analysis failures are scoped to a
// single user or detector, and concurrent award conflicts are swallowed
// internally. Nothing in this package is fatal to the process.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure scenarios.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrBadRequest     = errors.New("bad request")
	ErrInternal       = errors.New("internal error")
	ErrConflict       = errors.New("conflict")
	ErrPassInProgress = errors.New("analysis pass already in progress")
)

// AppError is a structured application error with HTTP status and error code.
type AppError struct {
	// Code is a machine-readable error code (e.g. "DUPLICATE_EVENT").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// HTTPStatus is the corresponding HTTP status code.
	HTTPStatus int `json:"-"`

	// Params carries structured context for the caller.
	Params map[string]interface{} `json:"params,omitempty"`

	// Err is the wrapped underlying error.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithParams attaches structured parameters to the error.
func (e *AppError) WithParams(params map[string]interface{}) *AppError {
	if e == nil || len(params) == 0 {
		return e
	}
	e.Params = params
	return e
}

// Common error constructors.

// NotFound creates a 404 error.
func NotFound(code, message string) *AppError {
	return New(code, message, http.StatusNotFound)
}

// BadRequest creates a 400 error.
func BadRequest(code, message string) *AppError {
	return New(code, message, http.StatusBadRequest)
}

// Conflict creates a 409 error.
func Conflict(code, message string) *AppError {
	return New(code, message, http.StatusConflict)
}

// Internal creates a 500 error.
func Internal(code, message string) *AppError {
	return New(code, message, http.StatusInternalServerError)
}

// IsAppError checks if an error is an AppError and returns it.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// DuplicateEventError is returned when an idempotency key has already been
// used for the user. It is a non-fatal no-op carrying the prior event ID so
// callers can treat the retried ingestion as success.
type DuplicateEventError struct {
	ExistingID string
}

// Error implements the error interface.
func (e *DuplicateEventError) Error() string {
	return fmt.Sprintf("duplicate event: idempotency key already used (event %s)", e.ExistingID)
}

// IsDuplicateEvent checks if an error is a DuplicateEventError.
func IsDuplicateEvent(err error) (*DuplicateEventError, bool) {
	var dup *DuplicateEventError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}

// AnalysisError reports a failed detector or evaluation pass for one user.
// It is logged and skipped; other users and detectors proceed.
type AnalysisError struct {
	UserID   string
	Detector string
	Err      error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Detector != "" {
		return fmt.Sprintf("analysis failed for user %s (detector %s): %v", e.UserID, e.Detector, e.Err)
	}
	return fmt.Sprintf("analysis failed for user %s: %v", e.UserID, e.Err)
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}
