// Package funcref manages a dynamic table of WebAssembly function references.
//
// It lets an embedder register an arbitrary host-side Go function into a
// shared, growable table of callable entries and hands back a stable integer
// slot that guest code can use to invoke the function indirectly, as if it
// had always been a native table entry.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	funcref/             Root package with the Table and FunctionBuilder interfaces
//	├── errors/          Structured error types (phase + kind taxonomy)
//	├── wasm/            LEB128 codec and trampoline module encoding
//	├── sig/             Signature-tag and WIT type translation
//	├── table/           In-memory growable funcref table implementation
//	├── trampoline/      Turns a Go function into a table-insertable api.Function
//	└── registry/        Slot allocation, deduplication, and lifecycle
//
// # Quick Start
//
// Register a Go function and call it through the table:
//
//	rt := wazero.NewRuntime(ctx)
//	defer rt.Close(ctx)
//
//	tab := table.NewLocal()
//	reg := registry.New(tab, trampoline.New(rt))
//
//	add := funcref.Host(api.GoFunc(func(ctx context.Context, stack []uint64) {
//	    stack[0] = api.EncodeI32(api.DecodeI32(stack[0]) + api.DecodeI32(stack[1]))
//	}))
//
//	slot, err := reg.Register(ctx, add, "iii")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry := tab.Get(slot).(api.Function)
//	results, err := entry.Call(ctx, api.EncodeI32(2), api.EncodeI32(40))
//
// Registration is idempotent per callable: registering the same *HostFunc or
// api.Function again returns the slot it already holds. Slots released with
// Unregister are reused before the table grows.
package funcref
