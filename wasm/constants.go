package wasm

// Module header bytes.
var (
	magic   = []byte{0x00, 0x61, 0x73, 0x6D} // "\0asm"
	version = []byte{0x01, 0x00, 0x00, 0x00}
)

// Section IDs used by the trampoline module.
const (
	SectionType   byte = 1
	SectionImport byte = 2
	SectionExport byte = 7
)

// Import/export descriptor kinds.
const (
	KindFunc byte = 0
)

// Value type encodings as defined in the WebAssembly binary format.
const (
	ValI32 byte = 0x7F // 32-bit integer
	ValI64 byte = 0x7E // 64-bit integer
	ValF32 byte = 0x7D // 32-bit float
	ValF64 byte = 0x7C // 64-bit float
)

// FuncTypeForm prefixes every function type in the type section.
const FuncTypeForm byte = 0x60
