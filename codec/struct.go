package codec

import "github.com/wippyai/wasmbin/errors"

// Member is one field of a product type T, described once and used for
// encoding, decoding and traversal alike.
type Member[T any] struct {
	name   string
	encode func(w *Writer, v *T)
	decode func(r *Reader, v *T) error
	nodes  func(v *T, fn func(Node) error) error
}

// Name returns the field name used in error paths.
func (m Member[T]) Name() string {
	return m.name
}

// Field describes the field of T reached through get and shaped by c.
func Field[T, F any](name string, get func(*T) *F, c Codec[F]) Member[T] {
	return Member[T]{
		name: name,
		encode: func(w *Writer, v *T) {
			c.Encode(w, get(v))
		},
		decode: func(r *Reader, v *T) error {
			return c.Decode(r, get(v))
		},
		nodes: func(v *T, fn func(Node) error) error {
			return c.Nodes(get(v), fn)
		},
	}
}

// decodeFields decodes members in order, wrapping the first failure with
// the member name.
func decodeFields[T any](r *Reader, v *T, fields []Member[T]) error {
	for _, f := range fields {
		if err := f.decode(r, v); err != nil {
			return errors.Within(err, f.name)
		}
	}
	return nil
}

func encodeFields[T any](w *Writer, v *T, fields []Member[T]) {
	for _, f := range fields {
		f.encode(w, v)
	}
}

func walkFields[T any](v *T, fields []Member[T], fn func(Node) error) error {
	for _, f := range fields {
		if err := f.nodes(v, fn); err != nil {
			return err
		}
	}
	return nil
}

// StructCodec encodes a product type as the concatenation of its fields
// in declaration order.
type StructCodec[T any] struct {
	name   string
	fields []Member[T]
}

// Struct describes a product type.
func Struct[T any](name string, fields ...Member[T]) *StructCodec[T] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.name] {
			panic(errors.Registration(name, "duplicate field "+f.name))
		}
		seen[f.name] = true
	}
	return &StructCodec[T]{name: name, fields: fields}
}

// Name returns the type name.
func (s *StructCodec[T]) Name() string { return s.name }

// Fields returns the field descriptions in declaration order.
func (s *StructCodec[T]) Fields() []Member[T] { return s.fields }

// Encode writes every field in order.
func (s *StructCodec[T]) Encode(w *Writer, v *T) {
	encodeFields(w, v, s.fields)
}

// Decode reads every field in order. v is only assigned when all fields
// decoded successfully.
func (s *StructCodec[T]) Decode(r *Reader, v *T) error {
	var tmp T
	if err := decodeFields(r, &tmp, s.fields); err != nil {
		return err
	}
	*v = tmp
	return nil
}

// Walk enumerates the nodes of every field in order.
func (s *StructCodec[T]) Walk(v *T, fn func(Node) error) error {
	return walkFields(v, s.fields, fn)
}

// Nodes presents v as a single node.
func (s *StructCodec[T]) Nodes(v *T, fn func(Node) error) error {
	return fn(NodeOf[T](v, s))
}

// TaggedStruct describes a product type preceded by a fixed discriminant.
// It behaves as a union with a single case, so it can be the target of a
// Nested case elsewhere.
func TaggedStruct[T any](name string, tag uint32, fields ...Member[T]) *UnionCodec[T] {
	return Union(name, Variant(name, tag,
		func(*T) bool { return true },
		func(*T) {},
		fields...,
	))
}
