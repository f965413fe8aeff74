package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// InternalMessage is the user-facing fallback when internal errors occur.
	InternalMessage = "Prediction failed due to an internal error."
	// UnavailableMessage describes a classifier or catalog that never initialised.
	UnavailableMessage = "ML model is not loaded. Check server logs."
)

// AppError wraps an underlying error with an HTTP status and a message safe to
// return to the client.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// BadRequest marks a client input error. The message is safe to show verbatim.
func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// BadRequestErr wraps an underlying cause as a client input error, exposing the
// cause's text since client errors are safe to show verbatim.
func BadRequestErr(err error, message string) *AppError {
	return &AppError{Err: err, Status: http.StatusBadRequest, Message: message}
}

// Unavailable marks a dependency that failed to initialise at startup.
func Unavailable(message string) *AppError {
	return &AppError{Status: http.StatusServiceUnavailable, Message: message}
}

// Internal wraps an unexpected failure. The underlying error is kept for
// logging but the message returned to the client stays generic.
func Internal(err error) *AppError {
	return &AppError{Err: err, Status: http.StatusInternalServerError, Message: InternalMessage}
}

// StatusOf extracts the HTTP status for err, defaulting to 500 for errors that
// did not pass through this package.
func StatusOf(err error) int {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the client-safe message for err.
func MessageOf(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Message
	}
	return InternalMessage
}
