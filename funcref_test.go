package funcref_test

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/funcref"
)

func TestHostWrapperIdentity(t *testing.T) {
	fn := api.GoFunc(func(ctx context.Context, stack []uint64) {})

	h := funcref.Host(fn)
	if h != h {
		t.Fatal("wrapper must compare equal to itself")
	}

	// Two wrappers around the same function are distinct callables.
	if funcref.Host(fn) == funcref.Host(fn) {
		t.Error("separate wrappers should have separate identities")
	}
}
