// Package common holds the error taxonomy shared by every pipeline stage.
//
// Each stage wraps its underlying cause into an *Error tagged with a Kind,
// so callers can distinguish a bad source string from a network failure or
// an OCR failure programmatically instead of by message content. Kinds map
// one-to-one onto process exit codes for scriptability.
package common

import (
	"errors"
	"fmt"
)

// Kind identifies which pipeline stage a failure originated from.
type Kind int

const (
	// KindUnknown marks errors that did not come from a pipeline stage.
	KindUnknown Kind = iota

	// KindInvalidInput covers bad or missing source/output arguments and
	// unsupported file extensions. No fetch is attempted after one.
	KindInvalidInput

	// KindFetchFailure covers network errors, non-2xx HTTP statuses, and
	// local file read failures.
	KindFetchFailure

	// KindProcessingFailure covers image decode and OCR failures.
	KindProcessingFailure

	// KindPersistFailure covers output directory creation and file write
	// failures.
	KindPersistFailure
)

// String returns a stable lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindFetchFailure:
		return "fetch failure"
	case KindProcessingFailure:
		return "processing failure"
	case KindPersistFailure:
		return "persist failure"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit code associated with the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindInvalidInput:
		return 2
	case KindFetchFailure:
		return 3
	case KindProcessingFailure:
		return 4
	case KindPersistFailure:
		return 5
	default:
		return 1
	}
}

// Error is a failure from one pipeline stage, carrying the stage kind, a
// short context string (the source or the output path), and the original
// cause.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds a kind-tagged pipeline error.
func NewError(kind Kind, context string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Context: context,
		Cause:   cause,
	}
}

// KindOf extracts the failure kind from err, or KindUnknown if err does not
// wrap a pipeline *Error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// ExitCode maps an error to a process exit code: 0 for nil, the kind's code
// for pipeline errors, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
