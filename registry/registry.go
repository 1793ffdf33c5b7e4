// Package registry assigns stable table slots to host callables.
//
// A Registrar deduplicates registrations by callable identity, allocates
// slots through a free list before growing the table, and falls back to
// trampoline synthesis when the table rejects a callable that is not a
// native function reference.
package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/funcref"
	"github.com/wippyai/funcref/errors"
	"github.com/wippyai/funcref/sig"
	"github.com/wippyai/funcref/trampoline"
)

// Registrar maps callable identity to table slots.
//
// The identity map is built lazily: the first operation scans the table's
// current contents and records every non-empty entry. After that the
// Registrar assumes it is the table's sole mutator; out-of-band table
// mutation makes the map stale.
//
// All state (table, free list, identity maps) forms one unit; Registrar is
// single-goroutine only. A concurrent adaptation would need one mutex
// spanning all of it.
type Registrar struct {
	table   funcref.Table
	synth   *trampoline.Synthesizer
	alloc   *allocator
	slots   map[any]uint32 // callable identity -> slot
	owners  map[uint32]any // slot -> callable identity
	scanned bool
}

// New creates a Registrar over the given table and synthesizer.
func New(t funcref.Table, s *trampoline.Synthesizer) *Registrar {
	return &Registrar{
		table:  t,
		synth:  s,
		alloc:  newAllocator(t),
		slots:  make(map[any]uint32),
		owners: make(map[uint32]any),
	}
}

// Register assigns a table slot to callable and returns it.
//
// A callable already registered keeps its slot; the signature argument is
// ignored in that case. New callables get a slot from the free list or
// from growing the table, then are placed directly when the table accepts
// them (api.Function values). When the table rejects the value, a
// *funcref.HostFunc is synthesized into a trampoline using signature —
// required on that path — and the trampoline is placed instead.
//
// The identity maps are updated only after the table placement committed;
// on failure the acquired slot returns to the free list.
func (r *Registrar) Register(ctx context.Context, callable any, signature string) (uint32, error) {
	if callable == nil {
		return 0, errors.InvalidEntry(errors.PhaseRegister, "callable is nil")
	}
	r.ensureScanned()

	if slot, ok := r.slots[callable]; ok {
		return slot, nil
	}

	slot, err := r.alloc.acquire()
	if err != nil {
		return 0, err
	}

	if err := r.place(ctx, slot, callable, signature); err != nil {
		// The slot was never filled, so it goes straight back. A table
		// grown for it stays grown; growth is irreversible by contract.
		_ = r.alloc.release(slot)
		return 0, err
	}

	r.slots[callable] = slot
	r.owners[slot] = callable

	Logger().Debug("registered callable", zap.Uint32("slot", slot))
	return slot, nil
}

// Unregister releases the slot of a live registration. The table entry is
// not cleared; the next registration to claim the slot overwrites it.
func (r *Registrar) Unregister(slot uint32) error {
	r.ensureScanned()

	callable, ok := r.owners[slot]
	if !ok {
		return errors.NotLive(errors.PhaseRegister, slot)
	}

	delete(r.owners, slot)
	delete(r.slots, callable)
	if err := r.alloc.release(slot); err != nil {
		return err
	}

	Logger().Debug("unregistered callable", zap.Uint32("slot", slot))
	return nil
}

// ensureScanned initializes the identity maps from the table's current
// contents. Idempotent.
func (r *Registrar) ensureScanned() {
	if r.scanned {
		return
	}
	length := r.table.Length()
	for i := uint32(0); i < length; i++ {
		if e := r.table.Get(i); e != nil {
			r.slots[e] = i
			r.owners[i] = e
		}
	}
	r.scanned = true
}

// place puts callable into the table at slot, synthesizing a trampoline
// when the direct set is rejected as an invalid entry.
func (r *Registrar) place(ctx context.Context, slot uint32, callable any, signature string) error {
	err := r.table.Set(slot, callable)
	if err == nil {
		return nil
	}
	if !errors.IsKind(err, errors.KindInvalidEntry) {
		return err
	}

	hf, ok := callable.(*funcref.HostFunc)
	if !ok || hf.Fn == nil {
		return err
	}
	if signature == "" {
		return errors.MissingSignature(fmt.Sprintf("callable %p needs a trampoline but no signature was supplied", hf))
	}

	sg, err := sig.Parse(signature)
	if err != nil {
		return err
	}
	entry, err := r.synth.Synthesize(ctx, hf.Fn, sg)
	if err != nil {
		return err
	}
	return r.table.Set(slot, entry)
}
