package wasm

import "github.com/wippyai/wasmbin/codec"

// Shape descriptions of the grammar types. Each is the single source for
// encoding, decoding and traversal of its type.
var (
	ValueTypeCodec = codec.ByteEnum("ValueType", I32, I64, F32, F64)

	ElemTypeCodec = codec.ByteEnum("ElemType", FuncRef)

	// BlockTypeCodec reserves 0x40 for the empty block type and reuses the
	// value type codes for single-result blocks.
	BlockTypeCodec = codec.Union("BlockType",
		codec.Unit("Empty", uint32(BlockTypeEmptyByte), EmptyBlock()),
		codec.Nested("Value",
			func(b *BlockType) bool { return b.Kind == BlockValue },
			func(b *BlockType) { b.Kind = BlockValue },
			func(b *BlockType) *ValueType { return &b.Value },
			ValueTypeCodec,
		),
	)

	FuncTypeCodec = codec.TaggedStruct("FuncType", uint32(FuncTypeByte),
		codec.Field("params", func(f *FuncType) *[]ValueType { return &f.Params }, codec.Seq[ValueType](ValueTypeCodec)),
		codec.Field("results", func(f *FuncType) *[]ValueType { return &f.Results }, codec.Seq[ValueType](ValueTypeCodec)),
	)

	MemTypeCodec = codec.Struct("MemType",
		codec.Field("limits", func(m *MemType) *Limits { return &m.Limits }, LimitsCodec),
	)

	TableTypeCodec = codec.Struct("TableType",
		codec.Field("elem_type", func(t *TableType) *ElemType { return &t.ElemType }, ElemTypeCodec),
		codec.Field("limits", func(t *TableType) *Limits { return &t.Limits }, LimitsCodec),
	)

	GlobalTypeCodec = codec.Struct("GlobalType",
		codec.Field("value_type", func(g *GlobalType) *ValueType { return &g.ValueType }, ValueTypeCodec),
		codec.Field("mutable", func(g *GlobalType) *bool { return &g.Mutable }, codec.Bool),
	)
)
