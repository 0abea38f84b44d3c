package codec

// OverrideCodec encodes a logical type T through an auxiliary wire shape R
// when T has no direct structural mapping to its encoding. Traversal still
// follows T's logical shape.
type OverrideCodec[T, R any] struct {
	name     string
	repr     Codec[R]
	toRepr   func(T) R
	fromRepr func(R) T
	shape    Codec[T]
}

// Override describes T as encoded by repr. toRepr picks the wire shape for a
// logical value, fromRepr maps a decoded wire shape back. shape describes
// T's logical children and is never used for encoding.
func Override[T, R any](name string, repr Codec[R], toRepr func(T) R, fromRepr func(R) T, shape Codec[T]) *OverrideCodec[T, R] {
	return &OverrideCodec[T, R]{
		name:     name,
		repr:     repr,
		toRepr:   toRepr,
		fromRepr: fromRepr,
		shape:    shape,
	}
}

// Name returns the logical type name.
func (o *OverrideCodec[T, R]) Name() string { return o.name }

// Encode converts v to its wire shape and encodes that.
func (o *OverrideCodec[T, R]) Encode(w *Writer, v *T) {
	rv := o.toRepr(*v)
	o.repr.Encode(w, &rv)
}

// Decode decodes the wire shape and converts it back.
func (o *OverrideCodec[T, R]) Decode(r *Reader, v *T) error {
	var rv R
	if err := o.repr.Decode(r, &rv); err != nil {
		return err
	}
	*v = o.fromRepr(rv)
	return nil
}

// Walk enumerates the logical children of v.
func (o *OverrideCodec[T, R]) Walk(v *T, fn func(Node) error) error {
	return o.shape.Walk(v, fn)
}

// Nodes presents v as a single node.
func (o *OverrideCodec[T, R]) Nodes(v *T, fn func(Node) error) error {
	return fn(NodeOf[T](v, o))
}
