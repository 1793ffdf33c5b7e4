package registry

import (
	"github.com/wippyai/funcref"
	"github.com/wippyai/funcref/errors"
)

// allocator hands out table slots, reusing released indices before
// growing. Reuse order is unspecified; current behavior is LIFO.
type allocator struct {
	table funcref.Table
	free  []uint32
}

func newAllocator(t funcref.Table) *allocator {
	return &allocator{
		table: t,
		free:  make([]uint32, 0, 16),
	}
}

// acquire returns a free slot, growing the table by exactly one entry when
// none are free. The free list is untouched when growth fails.
func (a *allocator) acquire() (uint32, error) {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		return slot, nil
	}

	prior, err := a.table.Grow(1)
	if err != nil {
		return 0, errors.Exhausted(errors.PhaseAllocate,
			"table refused to grow by one slot; construct it with a larger max size or a growable backing", err)
	}
	return prior, nil
}

// release returns a slot to the free list. Releasing a slot that is
// already free is a caller error.
func (a *allocator) release(slot uint32) error {
	for _, s := range a.free {
		if s == slot {
			return errors.NotLive(errors.PhaseAllocate, slot)
		}
	}
	a.free = append(a.free, slot)
	return nil
}
