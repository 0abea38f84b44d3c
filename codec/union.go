package codec

import (
	"fmt"
	"math"
	"slices"

	"github.com/wippyai/wasmbin/errors"
)

// TagFormat is the wire width of a union discriminant.
type TagFormat int

const (
	// TagByte is a single fixed byte.
	TagByte TagFormat = iota
	// TagVarU32 is an unsigned LEB128 u32.
	TagVarU32
)

func (f TagFormat) max() uint32 {
	if f == TagByte {
		return math.MaxUint8
	}
	return math.MaxUint32
}

func (f TagFormat) read(r *Reader) (uint32, error) {
	if f == TagByte {
		b, err := r.ReadByte()
		return uint32(b), err
	}
	return r.ReadU32()
}

func (f TagFormat) write(w *Writer, tag uint32) {
	if f == TagByte {
		w.Byte(byte(tag))
		return
	}
	w.WriteU32(tag)
}

// Tagged is a codec whose encoding starts with a discriminant. Unions
// consult it when delegating part of their tag space.
type Tagged[T any] interface {
	Codec[T]
	TagFormat() TagFormat
	Tags() []uint32
	HasTag(tag uint32) bool
	// DecodeTagged decodes the remainder of a value whose discriminant
	// has already been consumed.
	DecodeTagged(r *Reader, tag uint32, v *T) error
}

// delegate is a case that hands a part of the tag space to another union.
type delegate[T any] interface {
	format() TagFormat
	tags() []uint32
	hasTag(tag uint32) bool
	decode(r *Reader, tag uint32, v *T) error
	encode(w *Writer, v *T)
	nodes(v *T, fn func(Node) error) error
}

// Case is one variant of a union.
type Case[T any] struct {
	name     string
	tag      uint32
	is       func(*T) bool
	init     func(*T)
	fields   []Member[T]
	delegate delegate[T]
}

// Unit describes a payload-less case identified by its value.
func Unit[T comparable](name string, tag uint32, value T) Case[T] {
	return Case[T]{
		name: name,
		tag:  tag,
		is:   func(v *T) bool { return *v == value },
		init: func(v *T) { *v = value },
	}
}

// Variant describes a case with its own discriminant. is reports whether a
// value is this case, init prepares a zero value to receive the payload.
func Variant[T any](name string, tag uint32, is func(*T) bool, init func(*T), fields ...Member[T]) Case[T] {
	return Case[T]{
		name:   name,
		tag:    tag,
		is:     is,
		init:   init,
		fields: fields,
	}
}

// Nested describes a case whose discriminants are those of inner. The
// leading tag is shared: on decode the union's own tags are tried first,
// then nested cases in declaration order.
func Nested[T, N any](name string, is func(*T) bool, init func(*T), get func(*T) *N, inner Tagged[N]) Case[T] {
	return Case[T]{
		name:     name,
		is:       is,
		init:     init,
		delegate: nested[T, N]{get: get, inner: inner},
	}
}

type nested[T, N any] struct {
	get   func(*T) *N
	inner Tagged[N]
}

func (n nested[T, N]) format() TagFormat      { return n.inner.TagFormat() }
func (n nested[T, N]) tags() []uint32         { return n.inner.Tags() }
func (n nested[T, N]) hasTag(tag uint32) bool { return n.inner.HasTag(tag) }

func (n nested[T, N]) decode(r *Reader, tag uint32, v *T) error {
	return n.inner.DecodeTagged(r, tag, n.get(v))
}

func (n nested[T, N]) encode(w *Writer, v *T) {
	n.inner.Encode(w, n.get(v))
}

func (n nested[T, N]) nodes(v *T, fn func(Node) error) error {
	return n.inner.Nodes(n.get(v), fn)
}

// UnionCodec encodes a sum type as a discriminant followed by the active
// case's payload.
type UnionCodec[T any] struct {
	name   string
	format TagFormat
	cases  []Case[T]
	byTag  map[uint32]int
	nested []int
}

// Union describes a sum type with single-byte discriminants.
func Union[T any](name string, cases ...Case[T]) *UnionCodec[T] {
	return UnionWithFormat(name, TagByte, cases...)
}

// UnionWithFormat describes a sum type with the given discriminant width.
// It panics if two cases claim the same discriminant, a tag does not fit
// the format, or a nested tag space uses a different format.
func UnionWithFormat[T any](name string, format TagFormat, cases ...Case[T]) *UnionCodec[T] {
	u := &UnionCodec[T]{
		name:   name,
		format: format,
		cases:  cases,
		byTag:  make(map[uint32]int, len(cases)),
	}

	claimed := make(map[uint32]string)
	claim := func(tag uint32, by string) {
		if tag > format.max() {
			panic(errors.Registration(name, fmt.Sprintf("case %s: tag 0x%x does not fit the tag format", by, tag)))
		}
		if prev, ok := claimed[tag]; ok {
			panic(errors.Registration(name, fmt.Sprintf("tag 0x%02x claimed by both %s and %s", tag, prev, by)))
		}
		claimed[tag] = by
	}

	for i, c := range cases {
		if c.delegate == nil {
			claim(c.tag, c.name)
			u.byTag[c.tag] = i
		}
	}
	for i, c := range cases {
		if c.delegate == nil {
			continue
		}
		if c.delegate.format() != format {
			panic(errors.Registration(name, "case "+c.name+": nested tag format differs"))
		}
		for _, tag := range c.delegate.tags() {
			claim(tag, c.name)
		}
		u.nested = append(u.nested, i)
	}
	return u
}

// Name returns the type name.
func (u *UnionCodec[T]) Name() string { return u.name }

// TagFormat returns the discriminant width.
func (u *UnionCodec[T]) TagFormat() TagFormat { return u.format }

// Tags returns every discriminant the union accepts, nested ones included,
// in ascending order.
func (u *UnionCodec[T]) Tags() []uint32 {
	var tags []uint32
	for _, c := range u.cases {
		if c.delegate == nil {
			tags = append(tags, c.tag)
		} else {
			tags = append(tags, c.delegate.tags()...)
		}
	}
	slices.Sort(tags)
	return tags
}

// HasTag reports whether tag selects a case of the union.
func (u *UnionCodec[T]) HasTag(tag uint32) bool {
	if _, ok := u.byTag[tag]; ok {
		return true
	}
	for _, i := range u.nested {
		if u.cases[i].delegate.hasTag(tag) {
			return true
		}
	}
	return false
}

func (u *UnionCodec[T]) active(v *T) (Case[T], bool) {
	for _, c := range u.cases {
		if c.is(v) {
			return c, true
		}
	}
	return Case[T]{}, false
}

// Encode writes the discriminant of the first case matching v, then its
// payload. A value matching no case is recorded as an error on w.
func (u *UnionCodec[T]) Encode(w *Writer, v *T) {
	c, ok := u.active(v)
	if !ok {
		w.Fail(errors.InvalidVariant(u.name, *v))
		return
	}
	if c.delegate != nil {
		c.delegate.encode(w, v)
		return
	}
	u.format.write(w, c.tag)
	encodeFields(w, v, c.fields)
}

// Decode reads a discriminant and the payload it selects.
func (u *UnionCodec[T]) Decode(r *Reader, v *T) error {
	start := r.Position()
	tag, err := u.format.read(r)
	if err != nil {
		return err
	}
	return u.decodeTagged(r, tag, start, v)
}

// DecodeTagged decodes the payload selected by an already consumed tag.
func (u *UnionCodec[T]) DecodeTagged(r *Reader, tag uint32, v *T) error {
	return u.decodeTagged(r, tag, r.Position(), v)
}

func (u *UnionCodec[T]) decodeTagged(r *Reader, tag uint32, start int, v *T) error {
	// Own discriminants take priority over nested tag spaces.
	if i, ok := u.byTag[tag]; ok {
		c := u.cases[i]
		var tmp T
		c.init(&tmp)
		if err := decodeFields(r, &tmp, c.fields); err != nil {
			return u.within(err, c)
		}
		*v = tmp
		return nil
	}
	for _, i := range u.nested {
		c := u.cases[i]
		if !c.delegate.hasTag(tag) {
			continue
		}
		var tmp T
		c.init(&tmp)
		if err := c.delegate.decode(r, tag, &tmp); err != nil {
			return u.within(err, c)
		}
		*v = tmp
		return nil
	}
	return errors.InvalidDiscriminant(u.name, tag, start)
}

// within names the failing case unless the union only has one.
func (u *UnionCodec[T]) within(err error, c Case[T]) error {
	if len(u.cases) == 1 {
		return err
	}
	return errors.Within(err, c.name)
}

// Walk enumerates the nodes of the active case's payload.
func (u *UnionCodec[T]) Walk(v *T, fn func(Node) error) error {
	c, ok := u.active(v)
	if !ok {
		return errors.New(errors.PhaseVisit, errors.KindInvalidVariant).
			Type(u.name).
			Detail("value %+v matches no variant", *v).
			Build()
	}
	if c.delegate != nil {
		return c.delegate.nodes(v, fn)
	}
	return walkFields(v, c.fields, fn)
}

// Nodes presents v as a single node.
func (u *UnionCodec[T]) Nodes(v *T, fn func(Node) error) error {
	return fn(NodeOf[T](v, u))
}

// ByteEnum describes a closed enum whose values are their own one-byte
// discriminants.
func ByteEnum[T ~uint8](name string, values ...T) *UnionCodec[T] {
	cases := make([]Case[T], len(values))
	for i, v := range values {
		cases[i] = Unit(fmt.Sprint(v), uint32(v), v)
	}
	return Union(name, cases...)
}
