package registry

import (
	"testing"

	"github.com/wippyai/funcref/errors"
	"github.com/wippyai/funcref/table"
)

func TestAllocatorGrowsWhenEmpty(t *testing.T) {
	tab := table.NewLocal()
	a := newAllocator(tab)

	for want := uint32(0); want < 3; want++ {
		slot, err := a.acquire()
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		if slot != want {
			t.Errorf("acquire = %d, want %d", slot, want)
		}
	}
	if tab.Length() != 3 {
		t.Errorf("table length = %d, want 3", tab.Length())
	}
}

func TestAllocatorReusesReleased(t *testing.T) {
	tab := table.NewLocal()
	a := newAllocator(tab)

	s0, _ := a.acquire()
	s1, _ := a.acquire()

	if err := a.release(s0); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := a.release(s1); err != nil {
		t.Fatalf("release: %v", err)
	}

	// Both released slots come back before any growth.
	got := map[uint32]bool{}
	for i := 0; i < 2; i++ {
		slot, err := a.acquire()
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		got[slot] = true
	}
	if !got[s0] || !got[s1] {
		t.Errorf("reused slots = %v, want {%d, %d}", got, s0, s1)
	}
	if tab.Length() != 2 {
		t.Errorf("table grew to %d during reuse", tab.Length())
	}
}

func TestAllocatorDoubleRelease(t *testing.T) {
	a := newAllocator(table.NewLocal())

	slot, _ := a.acquire()
	if err := a.release(slot); err != nil {
		t.Fatalf("release: %v", err)
	}

	err := a.release(slot)
	if !errors.IsKind(err, errors.KindNotLive) {
		t.Errorf("double release: got %v, want not_live", err)
	}
	if len(a.free) != 1 {
		t.Errorf("free list length = %d after double release, want 1", len(a.free))
	}
}

func TestAllocatorExhaustion(t *testing.T) {
	a := newAllocator(table.NewLocal(table.WithMaxSize(1)))

	if _, err := a.acquire(); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	_, err := a.acquire()
	if !errors.IsKind(err, errors.KindExhausted) {
		t.Fatalf("got %v, want exhausted", err)
	}
	if len(a.free) != 0 {
		t.Errorf("free list mutated by failed acquire: %v", a.free)
	}
}
