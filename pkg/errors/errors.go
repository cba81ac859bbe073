// Package errors provides structured error handling for the kinetic
// library. The motion core itself has no failure paths (out-of-range
// tuning is clamped, unknown ids return safe defaults); these errors
// cover the configuration surface around it.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid or unreadable profile.
	KindConfig
	// KindParsing indicates a yaml parsing failure.
	KindParsing
	// KindVersion indicates an engine version gate failure.
	KindVersion
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Error is a structured error with the operation that failed and its
// category.
type Error struct {
	// Op is the operation that failed (e.g. "profile.Load").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error, if any.
	Err error
}

// New creates a structured error wrapping err.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Errorf creates a structured error from a format string.
func Errorf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// As is the standard library's errors.As, re-exported so callers need a
// single errors import.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Is is the standard library's errors.Is, re-exported so callers need a
// single errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// KindOf returns the Kind of the first structured error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
