// Package errors provides structured error types for the funcref library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). All errors implement the standard error interface and support
// errors.Is/As; two *Error values match when Phase and Kind are equal.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSignature  Phase = "signature"  // signature translation
	PhaseSynthesize Phase = "synthesize" // trampoline module synthesis
	PhaseAllocate   Phase = "allocate"   // slot allocation
	PhaseRegister   Phase = "register"   // registry operations
	PhaseTable      Phase = "table"      // table access
)

// Kind categorizes the error
type Kind string

const (
	// Contract violations: caller bugs, never retried.
	KindInvalidSignature Kind = "invalid_signature"
	KindMissingSignature Kind = "missing_signature"
	KindInvalidEntry     Kind = "invalid_entry"
	KindOutOfRange       Kind = "out_of_range"
	KindNotLive          Kind = "not_live"

	// KindExhausted reports refused table growth; the caller should enable
	// or expand growth rather than retry.
	KindExhausted Kind = "exhausted"

	// KindHostFailure wraps module compile/instantiate errors verbatim.
	KindHostFailure Kind = "host_failure"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err (or anything it wraps) is an *Error of the
// given kind, regardless of phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// New creates an error with the given phase and kind
func New(phase Phase, kind Kind, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail}
}

// InvalidSignature reports a signature string that cannot be translated.
// The offending character and its position are named in the detail.
func InvalidSignature(tag byte, pos int) *Error {
	return &Error{
		Phase:  PhaseSignature,
		Kind:   KindInvalidSignature,
		Detail: fmt.Sprintf("unknown type tag %q at position %d", tag, pos),
	}
}

// MissingSignature reports a registration that required synthesis but
// supplied no signature.
func MissingSignature(detail string) *Error {
	return &Error{Phase: PhaseRegister, Kind: KindMissingSignature, Detail: detail}
}

// InvalidEntry reports a value the table cannot hold as a callable entry.
func InvalidEntry(phase Phase, detail string) *Error {
	return &Error{Phase: phase, Kind: KindInvalidEntry, Detail: detail}
}

// OutOfRange reports a table index beyond the current length.
func OutOfRange(index, length uint32) *Error {
	return &Error{
		Phase:  PhaseTable,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
	}
}

// NotLive reports an operation on a slot with no live registration.
func NotLive(phase Phase, slot uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotLive,
		Detail: fmt.Sprintf("slot %d is not live", slot),
	}
}

// Exhausted reports refused table growth with remediation guidance.
func Exhausted(phase Phase, detail string, cause error) *Error {
	return &Error{Phase: phase, Kind: KindExhausted, Detail: detail, Cause: cause}
}

// HostFailure wraps a module compile/instantiate error from the host runtime.
func HostFailure(detail string, cause error) *Error {
	return &Error{Phase: PhaseSynthesize, Kind: KindHostFailure, Detail: detail, Cause: cause}
}
