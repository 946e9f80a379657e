// Package httperr defines the error type handlers and middleware return so
// the central echo error handler can render a consistent JSON envelope.
package httperr

import (
	"fmt"
	"net/http"
)

// Issue describes one schema violation. Path holds JSON field names from
// the document root; an empty path refers to the whole body.
type Issue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
}

// Body is the wire shape of every error response.
type Body struct {
	Error   string  `json:"error"`
	Details string  `json:"details,omitempty"`
	Issues  []Issue `json:"issues,omitempty"`
}

// Error is an error that already knows its HTTP status and client message.
// Err is the underlying cause; it is logged and, outside production,
// exposed as Details on 5xx responses.
type Error struct {
	Status  int
	Message string
	Details string
	Issues  []Issue
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Body renders e. Cause details are only included when exposeCause is set.
func (e *Error) Body(exposeCause bool) Body {
	b := Body{Error: e.Message, Details: e.Details, Issues: e.Issues}
	if b.Details == "" && exposeCause && e.Err != nil {
		b.Details = e.Err.Error()
	}
	return b
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// WithDetails returns e with a client-visible details string.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// Validation is the 400 returned when a body, query or path value fails
// its schema.
func Validation(issues ...Issue) *Error {
	if issues == nil {
		issues = []Issue{}
	}
	return &Error{Status: http.StatusBadRequest, Message: "Validation error", Issues: issues}
}

// Internal wraps an unexpected failure as a 500 with a handler-specific
// message such as "Failed to fetch todos".
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

func InvalidID() *Error { return New(http.StatusBadRequest, "Invalid ID") }

func NotFound() *Error { return New(http.StatusNotFound, "Not found") }

func TooManyRequests() *Error { return New(http.StatusTooManyRequests, "Too many requests") }
