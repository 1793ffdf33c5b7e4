// Package sig translates compact signature strings into wire types.
//
// A signature string describes one function type: the first character is
// the result tag and the rest are parameter tags, in order.
//
//	v  void (result position only)
//	i  32-bit integer
//	j  64-bit integer
//	f  32-bit float
//	d  64-bit float
//	p  pointer-width integer (i32, or i64 under the wasm64 build tag)
//
// "vii" is a function taking two i32 parameters and returning nothing;
// "ifd" takes an f32 and an f64 and returns an i32.
package sig

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/funcref/errors"
)

// Signature is a translated function type: parameter wire types in order,
// and zero or one result wire type.
type Signature struct {
	Params  []api.ValueType
	Results []api.ValueType
}

// Parse translates a signature string. Any character outside the tag set,
// an empty string, or a void tag in parameter position is an
// invalid-signature error naming the offending character and its position.
func Parse(s string) (Signature, error) {
	if s == "" {
		return Signature{}, errors.New(errors.PhaseSignature, errors.KindInvalidSignature, "empty signature")
	}

	var sg Signature
	if s[0] != 'v' {
		t, ok := tagType(s[0])
		if !ok {
			return Signature{}, errors.InvalidSignature(s[0], 0)
		}
		sg.Results = []api.ValueType{t}
	}

	for i := 1; i < len(s); i++ {
		t, ok := tagType(s[i])
		if !ok {
			return Signature{}, errors.InvalidSignature(s[i], i)
		}
		sg.Params = append(sg.Params, t)
	}

	return sg, nil
}

// tagType maps a parameter tag to its wire type. The void tag is not a
// parameter type and maps to nothing.
func tagType(c byte) (api.ValueType, bool) {
	switch c {
	case 'i':
		return api.ValueTypeI32, true
	case 'j':
		return api.ValueTypeI64, true
	case 'f':
		return api.ValueTypeF32, true
	case 'd':
		return api.ValueTypeF64, true
	case 'p':
		return pointerType, true
	default:
		return 0, false
	}
}
