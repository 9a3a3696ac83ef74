// Package errs defines the single error type every layer of simpledb
// funnels failures through, so callers can tell a recoverable,
// prompt-level failure (duplicate key, bad syntax) apart from a
// structural one (corrupt file, page out of bounds) without string
// matching.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure the way §7 of the design lays it out.
type Kind int

const (
	// KindUnknown is the zero value; never returned deliberately.
	KindUnknown Kind = iota

	// Recovered at the prompt: the REPL prints a message and loops.
	KindPrepareSyntax
	KindUnrecognizedStatement
	KindStringTooLong
	KindNegativeID
	KindDuplicateKey
	KindMetaUnrecognized
	KindTableFull

	// Fatal: the process cannot make progress and aborts at the
	// driver boundary.
	KindCorruptFile
	KindIOError
	KindPageOutOfBounds
	KindUnimplemented
)

func (k Kind) String() string {
	switch k {
	case KindPrepareSyntax:
		return "prepare_syntax"
	case KindUnrecognizedStatement:
		return "unrecognized_statement"
	case KindStringTooLong:
		return "string_too_long"
	case KindNegativeID:
		return "negative_id"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindMetaUnrecognized:
		return "meta_unrecognized"
	case KindTableFull:
		return "table_full"
	case KindCorruptFile:
		return "corrupt_file"
	case KindIOError:
		return "io_error"
	case KindPageOutOfBounds:
		return "page_out_of_bounds"
	case KindUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Fatal reports whether this kind aborts the process rather than being
// recovered at the prompt.
func (k Kind) Fatal() bool {
	switch k {
	case KindCorruptFile, KindIOError, KindPageOutOfBounds, KindUnimplemented:
		return true
	default:
		return false
	}
}

// Error wraps a Kind and an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a bare Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an Error of the given kind around a lower-level cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
