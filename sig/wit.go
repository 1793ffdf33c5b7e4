package sig

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/funcref/errors"
)

// FromWIT translates WIT function parameter and result types into a
// Signature, so component-model embedders can derive a table signature
// from WIT metadata instead of hand-writing tag strings.
//
// Only flat primitive types are supported; strings, lists, records and
// other compound types need memory transcoding a trampoline does not do.
// At most one result is accepted.
func FromWIT(params, results []wit.Type) (Signature, error) {
	if len(results) > 1 {
		return Signature{}, errors.New(errors.PhaseSignature, errors.KindInvalidSignature,
			"multi-value results are not supported")
	}

	var sg Signature
	for i, p := range params {
		t, err := witType(p)
		if err != nil {
			return Signature{}, fmt.Errorf("param %d: %w", i, err)
		}
		sg.Params = append(sg.Params, t)
	}
	for _, r := range results {
		t, err := witType(r)
		if err != nil {
			return Signature{}, fmt.Errorf("result: %w", err)
		}
		sg.Results = append(sg.Results, t)
	}

	return sg, nil
}

func witType(t wit.Type) (api.ValueType, error) {
	switch t.(type) {
	case wit.Bool, wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.Char:
		return api.ValueTypeI32, nil
	case wit.U64, wit.S64:
		return api.ValueTypeI64, nil
	case wit.F32:
		return api.ValueTypeF32, nil
	case wit.F64:
		return api.ValueTypeF64, nil
	default:
		return 0, errors.New(errors.PhaseSignature, errors.KindInvalidSignature,
			fmt.Sprintf("WIT type %T is not a flat primitive", t))
	}
}
