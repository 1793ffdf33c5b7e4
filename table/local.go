// Package table provides an in-memory implementation of the funcref.Table
// collaborator: a growable, capacity-limited collection of function
// reference entries.
package table

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/funcref"
	"github.com/wippyai/funcref/errors"
)

// Local is a slice-backed funcref table. Entries are api.Function values
// or empty; only api.Function values are insertable, every other value is
// rejected as an invalid entry. The table only grows, never shrinks, and
// indices are stable once assigned.
//
// Local is not safe for concurrent use; it shares the single-goroutine
// model of registry.Registrar.
type Local struct {
	entries []api.Function
	max     uint32
}

// Option configures a Local table.
type Option func(*Local)

// WithInitialSize pre-allocates n empty slots.
func WithInitialSize(n uint32) Option {
	return func(t *Local) {
		t.entries = make([]api.Function, n)
	}
}

// WithMaxSize caps growth at n total slots. Zero means unlimited.
func WithMaxSize(n uint32) Option {
	return func(t *Local) {
		t.max = n
	}
}

// NewLocal creates an empty table.
func NewLocal(opts ...Option) *Local {
	t := &Local{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Length returns the current number of slots.
func (t *Local) Length() uint32 {
	return uint32(len(t.entries))
}

// Get returns the entry at index, or nil when the slot is empty or out of
// range.
func (t *Local) Get(index uint32) any {
	if index >= uint32(len(t.entries)) {
		return nil
	}
	if f := t.entries[index]; f != nil {
		return f
	}
	return nil
}

// Set places entry at index. A nil entry clears the slot. Non-function
// values are rejected with an invalid-entry error, which is the signal the
// registry uses to fall back to trampoline synthesis.
func (t *Local) Set(index uint32, entry any) error {
	if index >= uint32(len(t.entries)) {
		return errors.OutOfRange(index, uint32(len(t.entries)))
	}
	if entry == nil {
		t.entries[index] = nil
		return nil
	}
	fn, ok := entry.(api.Function)
	if !ok {
		return errors.InvalidEntry(errors.PhaseTable, "entry is not a function reference")
	}
	t.entries[index] = fn
	return nil
}

// Grow extends the table by the given number of empty slots and returns
// the length prior to growth. Growth past the configured max size fails
// with an exhausted error and leaves the table unchanged.
func (t *Local) Grow(by uint32) (uint32, error) {
	prior := uint32(len(t.entries))
	if t.max > 0 && prior+by > t.max {
		return 0, errors.Exhausted(errors.PhaseTable, "table at maximum size", nil)
	}
	t.entries = append(t.entries, make([]api.Function, by)...)
	return prior, nil
}

var _ funcref.Table = (*Local)(nil)
