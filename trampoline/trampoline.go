// Package trampoline turns host Go functions into table-insertable
// api.Function values.
//
// When the runtime offers a direct function-building capability it is used
// as-is. Otherwise the synthesizer builds the smallest valid module that
// imports the Go function and re-exports it, instantiates it synchronously
// (the module is minimal, so there is no reason to compile asynchronously),
// and hands back the exported function reference.
package trampoline

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/funcref"
	"github.com/wippyai/funcref/errors"
	"github.com/wippyai/funcref/sig"
	"github.com/wippyai/funcref/wasm"
)

// Synthesizer produces callable table entries from Go functions.
//
// The capability decision is made once at construction: with a
// funcref.FunctionBuilder supplied, every Synthesize call delegates to it
// and no module is ever built; without one, every call takes the synthesis
// path. Not safe for concurrent use.
type Synthesizer struct {
	runtime   wazero.Runtime
	builder   funcref.FunctionBuilder
	namespace string
	seq       uint64
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithFunctionBuilder supplies a direct function-building capability,
// bypassing module synthesis entirely.
func WithFunctionBuilder(b funcref.FunctionBuilder) Option {
	return func(s *Synthesizer) {
		s.builder = b
	}
}

// WithNamespace overrides the import-module name prefix for synthesized
// modules. The default is the canonical "e".
func WithNamespace(ns string) Option {
	return func(s *Synthesizer) {
		s.namespace = ns
	}
}

// New creates a Synthesizer on the given runtime. The runtime may be nil
// only when a FunctionBuilder capability is supplied.
func New(rt wazero.Runtime, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		runtime:   rt,
		namespace: wasm.DefaultImportModule,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns an api.Function that delegates to fn with the given
// signature.
//
// On the synthesis path, fn is first bound as the sole export of a
// companion host module, then the trampoline module importing it is
// compiled and instantiated. Host module names carry a sequence suffix
// because wazero resolves imports by runtime-registered name and each name
// can be instantiated only once. Compile or instantiate failures are
// wrapped as host failures with the runtime's error as cause; there is no
// retry.
func (s *Synthesizer) Synthesize(ctx context.Context, fn api.GoFunction, sg sig.Signature) (api.Function, error) {
	if s.builder != nil {
		return s.builder.BuildFunction(sg.Params, sg.Results, fn)
	}

	hostName := s.namespace
	if s.seq > 0 {
		hostName = fmt.Sprintf("%s.%d", s.namespace, s.seq)
	}
	s.seq++

	hostMod, err := s.runtime.NewHostModuleBuilder(hostName).
		NewFunctionBuilder().
		WithGoFunction(fn, sg.Params, sg.Results).
		Export(wasm.ImportName).
		Instantiate(ctx)
	if err != nil {
		return nil, errors.HostFailure("instantiate host module", err)
	}

	modBytes := wasm.TrampolineModuleFor(hostName, sg.Params, sg.Results)
	compiled, err := s.runtime.CompileModule(ctx, modBytes)
	if err != nil {
		hostMod.Close(ctx)
		return nil, errors.HostFailure("compile trampoline module", err)
	}

	inst, err := s.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		compiled.Close(ctx)
		hostMod.Close(ctx)
		return nil, errors.HostFailure("instantiate trampoline module", err)
	}

	entry := inst.ExportedFunction(wasm.ImportName)
	if entry == nil {
		inst.Close(ctx)
		hostMod.Close(ctx)
		return nil, errors.HostFailure("trampoline export missing", nil)
	}

	Logger().Debug("synthesized trampoline",
		zap.String("module", hostName),
		zap.Int("params", len(sg.Params)),
		zap.Int("results", len(sg.Results)))

	return entry, nil
}
