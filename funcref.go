package funcref

import (
	"github.com/tetratelabs/wazero/api"
)

// Table is a growable indexed collection of function-reference entries.
//
// The table is owned by the embedder; this library assumes it is the sole
// mutator of the index range it manages. Indices are stable once assigned
// and the table only ever grows.
type Table interface {
	// Length returns the current number of slots.
	Length() uint32

	// Get returns the entry at index, or nil when the slot is empty or the
	// index is out of range.
	Get(index uint32) any

	// Set places entry at index. It fails with an out-of-range error for
	// indices beyond the current length, and with an invalid-entry error
	// when the value is not insertable as a function reference. The latter
	// rejection is what triggers trampoline synthesis.
	Set(index uint32, entry any) error

	// Grow extends the table by the given number of slots and returns the
	// length prior to growth. It fails when a capacity limit is reached.
	Grow(by uint32) (uint32, error)
}

// FunctionBuilder is an optional host capability that constructs a native
// callable entry directly from a type description and a Go function,
// without synthesizing a module. When a runtime offers it, the trampoline
// synthesizer uses it and returns its result unchanged.
type FunctionBuilder interface {
	BuildFunction(params, results []api.ValueType, fn api.GoFunction) (api.Function, error)
}

// HostFunc wraps a Go function so it has a stable, comparable identity.
// Go func values are not comparable, so the registry keys registrations on
// the wrapper pointer: registering the same *HostFunc twice yields the same
// slot, while two wrappers around the same closure are distinct callables.
type HostFunc struct {
	Fn api.GoFunction
}

// Host wraps fn for registration.
func Host(fn api.GoFunction) *HostFunc {
	return &HostFunc{Fn: fn}
}
