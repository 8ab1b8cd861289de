// Package serrors provides lightweight semantic error kinds. A kind is a
// comparable sentinel that packages attach to errors at their boundary so
// callers can branch on the meaning of a failure with errors.Is without
// depending on provider-specific error types.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel representing a semantic category of failure.
type Kind struct{ name string }

// Error implements the error interface for a bare kind.
func (k *Kind) Error() string { return k.name }

// NewKind creates a new semantic error kind with the given name.
func NewKind(name string) *Kind { return &Kind{name: name} }

// Kinds used across the lookup pipeline.
var (
	// ErrNotFound indicates the queried entity does not exist, e.g. an RDAP
	// 404 or an NXDOMAIN answer.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrNoData indicates the entity exists but carries no records of the
	// requested type (an empty NS answer).
	ErrNoData = NewKind("NO_DATA")
	// ErrTimeout indicates the operation exceeded its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates the remote service could not be reached or
	// answered with a server-side failure.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrBadRequest indicates the caller supplied invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
)

// Error couples a kind with an optional message and cause. errors.Is matches
// against both the kind and the cause chain.
type Error struct {
	kind  *Kind
	msg   string
	cause error
}

// With constructs an error of the given kind with a formatted message.
func With(k *Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an error of the given kind wrapping a concrete cause.
func Wrap(k *Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the cause for errors.Unwrap traversal.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target matches the kind sentinel or the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && target == error(e.kind) {
		return true
	}
	if e.cause != nil && errors.Is(e.cause, target) {
		return true
	}

	return false
}

// KindOf returns the kind carried by err, or nil when err carries none.
func KindOf(err error) *Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}
