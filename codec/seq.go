package codec

import "github.com/wippyai/wasmbin/errors"

// maxUnknownPrealloc caps the initial capacity of a sequence whose source
// does not report how many bytes are left.
const maxUnknownPrealloc = 1 << 12

type seq[E any] struct {
	elem Codec[E]
}

// Seq returns a codec for []E encoded as a u32 count followed by the
// elements in order.
func Seq[E any](elem Codec[E]) Codec[[]E] {
	return seq[E]{elem: elem}
}

func (s seq[E]) Name() string { return "vec<" + s.elem.Name() + ">" }

func (s seq[E]) Encode(w *Writer, v *[]E) {
	w.WriteU32(uint32(len(*v)))
	for i := range *v {
		s.elem.Encode(w, &(*v)[i])
	}
}

func (s seq[E]) Decode(r *Reader, v *[]E) error {
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	if n == 0 {
		*v = nil
		return nil
	}

	// The count is untrusted; capacity is only a hint bounded by the input.
	// It stays unsigned until clamped so it cannot wrap on 32-bit platforms.
	limit := uint64(maxUnknownPrealloc)
	if rem, ok := r.Remaining(); ok {
		limit = uint64(rem)
	}
	out := make([]E, 0, int(min(uint64(n), limit)))
	for i := uint32(0); i < n; i++ {
		var e E
		if err := s.elem.Decode(r, &e); err != nil {
			return errors.Within(err, errors.Index(int(i)))
		}
		out = append(out, e)
	}
	*v = out
	return nil
}

func (s seq[E]) Walk(v *[]E, fn func(Node) error) error {
	for i := range *v {
		if err := s.elem.Nodes(&(*v)[i], fn); err != nil {
			return err
		}
	}
	return nil
}

func (s seq[E]) Nodes(v *[]E, fn func(Node) error) error {
	return s.Walk(v, fn)
}

// Option is an optional value stored inline. Copies of an Option never
// share its value. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

type optional[E any] struct {
	elem Codec[E]
}

// Optional returns a codec for Option[E] encoded as a presence flag
// (0x00/0x01) followed by the value when present. An empty Option has no
// nodes.
func Optional[E any](elem Codec[E]) Codec[Option[E]] {
	return optional[E]{elem: elem}
}

func (o optional[E]) Name() string { return o.elem.Name() + "?" }

func (o optional[E]) Encode(w *Writer, v *Option[E]) {
	if !v.ok {
		w.WriteBool(false)
		return
	}
	w.WriteBool(true)
	o.elem.Encode(w, &v.value)
}

func (o optional[E]) Decode(r *Reader, v *Option[E]) error {
	present, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !present {
		*v = None[E]()
		return nil
	}
	var e E
	if err := o.elem.Decode(r, &e); err != nil {
		return err
	}
	*v = Some(e)
	return nil
}

func (o optional[E]) Walk(v *Option[E], fn func(Node) error) error {
	if !v.ok {
		return nil
	}
	return o.elem.Nodes(&v.value, fn)
}

func (o optional[E]) Nodes(v *Option[E], fn func(Node) error) error {
	return o.Walk(v, fn)
}
