package wasm

import (
	"slices"

	"github.com/wippyai/wasmbin/codec"
)

// ValueType is a WebAssembly number type. Its value is its binary code.
type ValueType byte

// ElemType is the element type of a table. Its value is its binary code.
type ElemType byte

// BlockKind selects the active variant of a BlockType.
type BlockKind byte

const (
	BlockEmpty BlockKind = iota // no result
	BlockValue                  // single result of BlockType.Value
)

// BlockType is the result type of a structured control instruction.
// The zero value is the empty block type.
type BlockType struct {
	Kind  BlockKind
	Value ValueType // only meaningful for BlockValue
}

// EmptyBlock returns the block type without results.
func EmptyBlock() BlockType {
	return BlockType{}
}

// ValueBlock returns the block type producing a single t.
func ValueBlock(t ValueType) BlockType {
	return BlockType{Kind: BlockValue, Value: t}
}

// FuncType is a function signature. Parameter and result order is significant.
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

// Clone returns a copy of f that shares no memory with it.
func (f FuncType) Clone() FuncType {
	return FuncType{Params: slices.Clone(f.Params), Results: slices.Clone(f.Results)}
}

// Equal reports whether f and o have the same parameters and results.
// Nil and empty lists are equal.
func (f FuncType) Equal(o FuncType) bool {
	return slices.Equal(f.Params, o.Params) && slices.Equal(f.Results, o.Results)
}

// Limits bounds the size of a table or memory. No relation between Min and
// Max is enforced. Max is held inline, so copies of a Limits are independent.
type Limits struct {
	Max codec.Option[uint32]
	Min uint32
}

// NewLimits returns limits without an upper bound.
func NewLimits(min uint32) Limits {
	return Limits{Min: min}
}

// BoundedLimits returns limits with an upper bound.
func BoundedLimits(min, max uint32) Limits {
	return Limits{Min: min, Max: codec.Some(max)}
}

// Equal reports whether l and o have the same bounds.
func (l Limits) Equal(o Limits) bool {
	return l == o
}

// MemType describes a linear memory.
type MemType struct {
	Limits Limits
}

// Equal reports whether m and o have the same limits.
func (m MemType) Equal(o MemType) bool {
	return m.Limits.Equal(o.Limits)
}

// TableType describes a table with element type and size limits.
type TableType struct {
	Limits   Limits
	ElemType ElemType
}

// Equal reports whether t and o describe the same table.
func (t TableType) Equal(o TableType) bool {
	return t.ElemType == o.ElemType && t.Limits.Equal(o.Limits)
}

// GlobalType describes a global variable's type and mutability.
type GlobalType struct {
	ValueType ValueType
	Mutable   bool
}
