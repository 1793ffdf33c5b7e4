//go:build wasm64

package sig

import "github.com/tetratelabs/wazero/api"

// pointerType is the wire type behind the 'p' tag under 64-bit addressing.
const pointerType = api.ValueTypeI64
