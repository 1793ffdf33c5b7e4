package wasm_test

import (
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/funcref/wasm"
)

func TestValTypeRoundtrip(t *testing.T) {
	types := []api.ValueType{
		api.ValueTypeI32,
		api.ValueTypeI64,
		api.ValueTypeF32,
		api.ValueTypeF64,
	}

	for _, vt := range types {
		if got := wasm.ParseValType(wasm.ValTypeToWasm(vt)); got != vt {
			t.Errorf("roundtrip %v = %v", vt, got)
		}
	}
}
