// Package wasmbin encodes, decodes and traverses the WebAssembly type
// grammar: value, block, function, memory, table and global types.
//
// # Architecture Overview
//
//	wasmbin/
//	├── codec/            Generic shape descriptions: primitives, sequences,
//	│                     optionals, structs, tagged unions, overrides, and
//	│                     the traversal engine driven by them
//	├── wasm/             The grammar types, their registered shapes, text
//	│                     rendering and wazero interop
//	├── errors/           Structured errors with phase, kind, path and offset
//	└── internal/binary/  Position-tracking LEB128 reader and sticky writer
//
// # Quick Start
//
//	data, err := wasm.Marshal(wasm.FuncType{
//	    Params:  []wasm.ValueType{wasm.I32, wasm.I64},
//	    Results: []wasm.ValueType{wasm.F32},
//	})
//	// data == 60 02 7f 7e 01 7d
//
//	ft, err := wasm.Unmarshal[wasm.FuncType](data)
//	fmt.Println(ft) // (i32, i64) -> (f32)
//
// Decoding failures name the path and byte offset of the fault:
//
//	[decode] invalid_discriminant at FuncType.params[1] (offset 3): ValueType - unknown discriminant 0x00
//
// # Scope
//
// The packages guarantee that values round-trip through their encoding
// and that malformed input is rejected precisely. Module framing, section
// parsing and semantic validation are left to callers.
//
// # Thread Safety
//
// Shape descriptions are immutable and safe for concurrent use. Values
// being encoded, decoded or visited are not synchronized.
package wasmbin
