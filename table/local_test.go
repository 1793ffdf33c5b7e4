package table_test

import (
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/funcref/errors"
	"github.com/wippyai/funcref/table"
)

// fakeFunc satisfies api.Function through embedding; the id field gives
// each value a distinct identity.
type fakeFunc struct {
	api.Function
	id int
}

func TestLocalGrowAndSet(t *testing.T) {
	tab := table.NewLocal()

	if tab.Length() != 0 {
		t.Fatalf("new table length = %d, want 0", tab.Length())
	}

	prior, err := tab.Grow(1)
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if prior != 0 || tab.Length() != 1 {
		t.Fatalf("Grow(1) = %d, length %d; want 0, 1", prior, tab.Length())
	}

	f := fakeFunc{id: 1}
	if err := tab.Set(0, f); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := tab.Get(0); got != f {
		t.Errorf("Get(0) = %v, want the stored entry", got)
	}

	prior, err = tab.Grow(2)
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if prior != 1 || tab.Length() != 3 {
		t.Errorf("Grow(2) = %d, length %d; want 1, 3", prior, tab.Length())
	}
}

func TestLocalEmptyAndOutOfRange(t *testing.T) {
	tab := table.NewLocal(table.WithInitialSize(2))

	if tab.Length() != 2 {
		t.Fatalf("length = %d, want 2", tab.Length())
	}
	if got := tab.Get(0); got != nil {
		t.Errorf("Get of empty slot = %v, want nil", got)
	}
	if got := tab.Get(5); got != nil {
		t.Errorf("Get out of range = %v, want nil", got)
	}

	err := tab.Set(5, fakeFunc{id: 1})
	if !errors.IsKind(err, errors.KindOutOfRange) {
		t.Errorf("Set out of range: got %v, want out_of_range", err)
	}
}

func TestLocalRejectsNonFunctionEntries(t *testing.T) {
	tab := table.NewLocal(table.WithInitialSize(1))

	for _, entry := range []any{"not a function", 42, struct{}{}} {
		err := tab.Set(0, entry)
		if !errors.IsKind(err, errors.KindInvalidEntry) {
			t.Errorf("Set(%v): got %v, want invalid_entry", entry, err)
		}
	}
	if got := tab.Get(0); got != nil {
		t.Errorf("rejected Set should leave the slot empty, got %v", got)
	}
}

func TestLocalSetNilClears(t *testing.T) {
	tab := table.NewLocal(table.WithInitialSize(1))

	if err := tab.Set(0, fakeFunc{id: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tab.Set(0, nil); err != nil {
		t.Fatalf("Set(nil): %v", err)
	}
	if got := tab.Get(0); got != nil {
		t.Errorf("cleared slot = %v, want nil", got)
	}
}

func TestLocalMaxSize(t *testing.T) {
	tab := table.NewLocal(table.WithMaxSize(2))

	if _, err := tab.Grow(2); err != nil {
		t.Fatalf("Grow within max: %v", err)
	}

	_, err := tab.Grow(1)
	if !errors.IsKind(err, errors.KindExhausted) {
		t.Fatalf("Grow past max: got %v, want exhausted", err)
	}
	if tab.Length() != 2 {
		t.Errorf("failed growth mutated length to %d", tab.Length())
	}
}
