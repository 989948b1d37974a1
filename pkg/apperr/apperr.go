// Package apperr defines the typed error taxonomy shared by every stage of
// the evaluation pipeline (detect → convert → infer → assess → batch).
// Each error wraps an optional cause with %w so callers can still
// errors.Is/errors.As through to the underlying diagnostic.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of the pipeline produced the error.
type Kind int

const (
	// KindInvalidInput marks a structurally malformed document: missing
	// header, non-numeric coordinates, or similar.
	KindInvalidInput Kind = iota
	// KindNoMatchingAdapter marks that no registered adapter detected the format.
	KindNoMatchingAdapter
	// KindConversionFailed marks an adapter-internal failure during convert().
	KindConversionFailed
	// KindInvalidModel marks a post-conversion model violating a hard invariant (I1).
	KindInvalidModel
	// KindTimeout marks a per-file batch timeout.
	KindTimeout
)

// String returns the human-readable name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindNoMatchingAdapter:
		return "NoMatchingAdapter"
	case KindConversionFailed:
		return "ConversionFailed"
	case KindInvalidModel:
		return "InvalidModel"
	case KindTimeout:
		return "Timeout"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the typed error carried through the pipeline. Field is the
// offending field path when known (e.g. "levels[0].rooms[2].position.x"),
// used so a malformed input surfaces the path per §7.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s (field=%s): %v", e.Kind, e.Msg, e.Field, e.Cause)
		}
		return fmt.Sprintf("%s: %s (field=%s)", e.Kind, e.Msg, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind, so callers can
// do errors.Is(err, apperr.New(apperr.KindInvalidInput, "", nil)) style
// checks; IsKind below performs the same Kind comparison directly.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New constructs an *Error of the given kind.
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// WithField attaches a field path, returning the same error for chaining.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(msg string) *Error {
	return New(KindInvalidInput, msg, nil)
}

// NoMatchingAdapter builds a KindNoMatchingAdapter error.
func NoMatchingAdapter(msg string) *Error {
	return New(KindNoMatchingAdapter, msg, nil)
}

// ConversionFailed wraps an adapter-internal error so it is never propagated raw.
func ConversionFailed(adapterName string, cause error) *Error {
	return New(KindConversionFailed, fmt.Sprintf("adapter %q failed", adapterName), cause)
}

// InvalidModel builds a KindInvalidModel error.
func InvalidModel(msg string) *Error {
	return New(KindInvalidModel, msg, nil)
}

// Timeout builds a KindTimeout error.
func Timeout(msg string) *Error {
	return New(KindTimeout, msg, nil)
}

// IsKind reports whether err is an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
