package wasm

import (
	"github.com/tetratelabs/wazero/api"
)

// ValTypeToWasm converts a wazero value type to its binary encoding.
func ValTypeToWasm(t api.ValueType) byte {
	switch t {
	case api.ValueTypeI32:
		return ValI32
	case api.ValueTypeI64:
		return ValI64
	case api.ValueTypeF32:
		return ValF32
	case api.ValueTypeF64:
		return ValF64
	default:
		return ValI32
	}
}

// ParseValType converts a binary value type encoding to a wazero value type.
func ParseValType(b byte) api.ValueType {
	switch b {
	case ValI32:
		return api.ValueTypeI32
	case ValI64:
		return api.ValueTypeI64
	case ValF32:
		return api.ValueTypeF32
	case ValF64:
		return api.ValueTypeF64
	default:
		return api.ValueTypeI32
	}
}
