//go:build !wasm64

package sig

import "github.com/tetratelabs/wazero/api"

// pointerType is the wire type behind the 'p' tag. The width is fixed per
// build: i32 by default, i64 under the wasm64 tag.
const pointerType = api.ValueTypeI32
