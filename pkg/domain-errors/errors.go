// Package domainerrors defines the closed set of failure kinds the personnel
// registry reports to its callers.
//
// Every failure that leaves a service carries exactly one Code. Stores never
// build these errors from driver codes directly; that translation lives in
// internal/personnel/violation.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeInvalidRequest is contradictory or malformed input, detected before any store call.
	CodeInvalidRequest Code = "invalid_request"
	// CodeNotFound is a referenced or targeted entity that does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict is a uniqueness violation.
	CodeConflict Code = "conflict"
	// CodeUnknown is an unclassified infrastructure failure, including
	// cancellation and deadline expiry.
	CodeUnknown Code = "unknown_error"
	// CodeUnauthorized is only produced by the identity collaborator.
	CodeUnauthorized Code = "unauthorized"
)

// Error is the domain error carried across service boundaries.
type Error struct {
	Code    Code
	Message string
	// Entity and ID name the record involved, when there is one.
	Entity string
	ID     string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports equality on code and message so tests can compare against a
// freshly constructed error with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a domain error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// NotFound names the missing entity kind and identifier.
func NotFound(entity string, id any) *Error {
	idStr := fmt.Sprint(id)
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %q not found", entity, idStr),
		Entity:  entity,
		ID:      idStr,
	}
}

// Conflict names the entity whose uniqueness rule was violated.
func Conflict(entity string, id any, message string) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: message,
		Entity:  entity,
		ID:      fmt.Sprint(id),
	}
}

// As extracts the first *Error in the chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of err, CodeUnknown for anything unclassified.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeUnknown
}

// ToHTTPStatus maps a code to the status the transport reports.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
