// Package wasm describes the WebAssembly type grammar and its binary
// encoding.
//
// # Types
//
//	ValueType   i32 | i64 | f32 | f64          0x7F 0x7E 0x7D 0x7C
//	BlockType   empty | ValueType              0x40 | value type byte
//	FuncType    0x60 vec(params) vec(results)
//	Limits      0x00 min | 0x01 min max        u32 LEB128 bounds
//	MemType     Limits
//	ElemType    funcref                        0x70
//	TableType   ElemType Limits
//	GlobalType  ValueType mutable               mutable is 0x00 or 0x01
//
// Each type has a shape description in the codec package (ValueTypeCodec,
// FuncTypeCodec, ...). The generic helpers select it by type:
//
//	data, err := wasm.Marshal(wasm.FuncType{Params: []wasm.ValueType{wasm.I32}})
//	ft, err := wasm.Unmarshal[wasm.FuncType](data)
//
// # Traversal
//
// Walk and Visit reach every nested value, including the numeric bounds
// inside Limits:
//
//	tt := wasm.TableType{ElemType: wasm.FuncRef, Limits: wasm.BoundedLimits(1, 2)}
//	wasm.Visit(&tt, func(l *wasm.Limits) error {
//		l.Min = 0
//		return nil
//	})
//
// # Equality
//
// Values compare structurally with Equal where they hold slices or
// pointers. Key returns a hashable canonical form.
//
// # wazero
//
// ValueType.API, FuncType.APITypes and the FuncTypeOf, MemTypeOf and
// GlobalTypeOf functions convert to and from the types of the wazero
// runtime.
package wasm
