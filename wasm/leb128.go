package wasm

// LEB128 encoding utilities for the WebAssembly binary format.

// EncodeULEB128 encodes an unsigned value in LEB128 format: 7 bits per
// byte, least-significant group first, with the continuation bit (bit 7)
// set on all but the final byte. Trampoline synthesis only ever feeds it
// values below 2^14 (so one or two bytes), but any uint32 encodes
// correctly.
func EncodeULEB128(v uint32) []byte {
	var result []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		result = append(result, b)
		if v == 0 {
			break
		}
	}
	return result
}

// DecodeULEB128 decodes an unsigned LEB128 value and returns it together
// with the number of bytes consumed.
func DecodeULEB128(data []byte) (uint32, int) {
	var result uint32
	var shift uint32
	for i, b := range data {
		result |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, i + 1
		}
		shift += 7
		if shift > 35 {
			return result, i + 1
		}
	}
	return result, len(data)
}
