// Package codec is a generic binary encode/decode and traversal engine for
// tagged, nested type grammars such as the WebAssembly type section.
//
// Each type describes its shape once, as a Codec[T] built from a handful of
// generic building blocks. The same description drives encoding, decoding
// and deep traversal, so no type carries hand-written recursion.
//
// # Building Blocks
//
//	Leaf, Byte, Bool, U32, U64, S32, S64   fixed-width and LEB128 primitives
//	Seq(elem)                              u32 count + elements
//	Optional(elem)                         presence flag + value
//	Struct(name, Field(...)...)            fields in declaration order
//	TaggedStruct(name, tag, Field(...)...) fixed discriminant + fields
//	Union(name, Unit|Variant|Nested...)    discriminant + active case payload
//	ByteEnum(name, values...)              closed enum, value == tag byte
//	Override(name, repr, to, from, shape)  hand-written wire mapping
//
// A product type:
//
//	var GlobalTypeCodec = codec.Struct("GlobalType",
//		codec.Field("value_type", func(g *GlobalType) *ValueType { return &g.ValueType }, ValueTypeCodec),
//		codec.Field("mutable", func(g *GlobalType) *bool { return &g.Mutable }, codec.Bool),
//	)
//
// # Discriminant Dispatch
//
// A union reads its discriminant and dispatches to the case declaring it.
// Nested cases borrow another union's tag space; on decode the union's own
// tags always win, then nested cases are tried in declaration order. Tags
// that match nothing fail with an invalid discriminant error naming the
// union, the tag and the stream offset. Overlapping claims are rejected
// when the union is described.
//
// # Traversal
//
// Walk visits a value and every descendant depth-first, in field, variant
// and element order. Sequences and optionals are transparent: they
// contribute their contents, not themselves. Visit narrows the walk to one
// Go type and hands out pointers that alias the tree:
//
//	// Double every limit bound inside a table type.
//	codec.Visit(&tt, wasm.TableTypeCodec, func(v *uint32) error {
//		*v *= 2
//		return nil
//	})
//
// Returning SkipChildren prunes a subtree; any other error aborts the walk
// and is returned unchanged.
//
// # Errors
//
// Failures are *errors.Error values from the errors package. Nested
// failures carry the path that led to them, e.g.
// "FuncType.params[1]", and the byte offset of the fault.
package codec
