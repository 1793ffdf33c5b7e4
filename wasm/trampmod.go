// Package wasm provides the binary-format primitives behind trampoline
// synthesis: LEB128 encoding and the minimal import/re-export module.
package wasm

import (
	"github.com/tetratelabs/wazero/api"
)

// Fixed import/export naming for trampoline modules. The single imported
// function lives under module "e" with field "f" and is re-exported as "f".
const (
	DefaultImportModule = "e"
	ImportName          = "f"
)

// TrampolineModule encodes the smallest valid module that imports one
// function of the given type from "e"."f" and re-exports it as "f".
//
// Everything outside the type section is static: magic, version, and the
// single-entry import and export sections referencing type index 0. Only
// the type section body (parameter count, parameter codes, and a 0- or
// 1-element result vector) varies per signature. At most one result type
// is supported.
func TrampolineModule(params, results []api.ValueType) []byte {
	return TrampolineModuleFor(DefaultImportModule, params, results)
}

// TrampolineModuleFor is TrampolineModule with a caller-chosen import
// module name. wazero resolves imports by module name registered on the
// runtime, and a name can only be instantiated once, so repeated syntheses
// need distinct names; with DefaultImportModule the output is byte-
// identical to TrampolineModule.
func TrampolineModuleFor(importModule string, params, results []api.ValueType) []byte {
	mod := append([]byte{}, magic...)
	mod = append(mod, version...)

	// Type section: one function type.
	body := []byte{0x01, FuncTypeForm}
	body = append(body, EncodeULEB128(uint32(len(params)))...)
	for _, t := range params {
		body = append(body, ValTypeToWasm(t))
	}
	if len(results) == 0 {
		body = append(body, 0x00)
	} else {
		body = append(body, 0x01, ValTypeToWasm(results[0]))
	}
	mod = append(mod, SectionType)
	mod = append(mod, EncodeULEB128(uint32(len(body)))...)
	mod = append(mod, body...)

	// Import section: one function of type 0.
	imp := []byte{0x01}
	imp = append(imp, EncodeULEB128(uint32(len(importModule)))...)
	imp = append(imp, importModule...)
	imp = append(imp, EncodeULEB128(uint32(len(ImportName)))...)
	imp = append(imp, ImportName...)
	imp = append(imp, KindFunc, 0x00)
	mod = append(mod, SectionImport)
	mod = append(mod, EncodeULEB128(uint32(len(imp)))...)
	mod = append(mod, imp...)

	// Export section: re-export function 0 under the import name.
	exp := []byte{0x01}
	exp = append(exp, EncodeULEB128(uint32(len(ImportName)))...)
	exp = append(exp, ImportName...)
	exp = append(exp, KindFunc, 0x00)
	mod = append(mod, SectionExport)
	mod = append(mod, EncodeULEB128(uint32(len(exp)))...)
	mod = append(mod, exp...)

	return mod
}
