package codec

import "github.com/wippyai/wasmbin/internal/binary"

// Primitive codecs. They are leaves: no children, presented as themselves.
var (
	Byte Codec[byte]   = Leaf("byte", (*Writer).Byte, (*Reader).ReadByte)
	Bool Codec[bool]   = Leaf("bool", (*Writer).WriteBool, (*Reader).ReadBool)
	U32  Codec[uint32] = Leaf("u32", (*Writer).WriteU32, (*Reader).ReadU32)
	U64  Codec[uint64] = Leaf("u64", (*Writer).WriteU64, (*Reader).ReadU64)
	S32  Codec[int32]  = Leaf("s32", (*Writer).WriteS32, (*Reader).ReadS32)
	S64  Codec[int64]  = Leaf("s64", (*Writer).WriteS64, (*Reader).ReadS64)
)

// EncodeU32 returns the minimal unsigned LEB128 encoding of v.
func EncodeU32(v uint32) []byte {
	return binary.AppendU32(nil, v)
}

// DecodeU32 decodes an unsigned LEB128 uint32 from the start of data and
// reports how many bytes it consumed.
func DecodeU32(data []byte) (uint32, int, error) {
	return binary.DecodeU32(data)
}

type leaf[T any] struct {
	name   string
	encode func(*Writer, T)
	decode func(*Reader) (T, error)
}

// Leaf builds a codec for a value without grammar-typed children from a
// pair of read/write functions.
func Leaf[T any](name string, encode func(*Writer, T), decode func(*Reader) (T, error)) Codec[T] {
	return leaf[T]{name: name, encode: encode, decode: decode}
}

func (l leaf[T]) Name() string { return l.name }

func (l leaf[T]) Encode(w *Writer, v *T) { l.encode(w, *v) }

func (l leaf[T]) Decode(r *Reader, v *T) error {
	x, err := l.decode(r)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (l leaf[T]) Walk(*T, func(Node) error) error { return nil }

func (l leaf[T]) Nodes(v *T, fn func(Node) error) error {
	return fn(NodeOf[T](v, l))
}
