package wasm

import (
	"io"

	"github.com/wippyai/wasmbin/codec"
)

// Type is the set of grammar types with a registered shape.
type Type interface {
	ValueType | BlockType | FuncType | Limits | MemType | ElemType | TableType | GlobalType
}

// CodecFor returns the shape description of T.
func CodecFor[T Type]() codec.Codec[T] {
	var c any
	switch any(*new(T)).(type) {
	case ValueType:
		c = ValueTypeCodec
	case BlockType:
		c = BlockTypeCodec
	case FuncType:
		c = FuncTypeCodec
	case Limits:
		c = LimitsCodec
	case MemType:
		c = MemTypeCodec
	case ElemType:
		c = ElemTypeCodec
	case TableType:
		c = TableTypeCodec
	case GlobalType:
		c = GlobalTypeCodec
	}
	return c.(codec.Codec[T])
}

// Marshal encodes v in the WebAssembly binary format.
func Marshal[T Type](v T) ([]byte, error) {
	return codec.Marshal(CodecFor[T](), v)
}

// Write encodes v to dst.
func Write[T Type](dst io.Writer, v T) error {
	return codec.Write(dst, CodecFor[T](), v)
}

// Unmarshal decodes exactly one T from data. Leftover bytes are an error.
func Unmarshal[T Type](data []byte) (T, error) {
	return codec.Unmarshal(CodecFor[T](), data)
}

// Read decodes one T from r, leaving r positioned after it.
func Read[T Type](r *codec.Reader) (T, error) {
	return codec.Read(r, CodecFor[T]())
}

// Walk traverses v and its descendants. See codec.Walk.
func Walk[T Type](v *T, fn func(codec.Node) error) error {
	return codec.Walk(v, CodecFor[T](), fn)
}

// Visit calls fn for every value of type U inside root, root included.
// Pointers handed to fn alias root. Sequences of a shallow copy share their
// backing array with the original; use FuncType.Clone before visiting one.
func Visit[U any, T Type](root *T, fn func(*U) error) error {
	return codec.Visit(root, CodecFor[T](), fn)
}

// Key returns a string that is equal for structurally equal values. It is
// the canonical encoding of v, so it fails for ill-formed values.
func Key[T Type](v T) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
