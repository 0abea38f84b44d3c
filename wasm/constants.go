package wasm

// Value type encodings as defined in the WebAssembly binary format.
const (
	I32 ValueType = 0x7F // 32-bit integer
	I64 ValueType = 0x7E // 64-bit integer
	F32 ValueType = 0x7D // 32-bit float
	F64 ValueType = 0x7C // 64-bit float
)

// Element type encodings.
const (
	FuncRef ElemType = 0x70 // Function reference
)

// Discriminants that are not values of an enum.
const (
	BlockTypeEmptyByte byte = 0x40 // empty block type
	FuncTypeByte       byte = 0x60 // function type prefix
	LimitsMinByte      byte = 0x00 // limits without maximum
	LimitsMinMaxByte   byte = 0x01 // limits with maximum
)
