package codec

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/wasmbin/errors"
	"github.com/wippyai/wasmbin/internal/binary"
)

// Reader is the position-tracking byte source every codec decodes from.
type Reader = binary.Reader

// Writer is the sticky-error byte sink every codec encodes to.
type Writer = binary.Writer

// NewReader adapts r for decoding. Sources that do not implement
// io.ByteReader are buffered.
func NewReader(r io.Reader) *Reader {
	return binary.FromReader(r)
}

// NewBytesReader creates a Reader over data.
func NewBytesReader(data []byte) *Reader {
	return binary.NewBytesReader(data)
}

// NewWriter creates a Writer backed by an in-memory buffer.
func NewWriter() *Writer {
	return binary.NewWriter()
}

// NewStreamWriter creates a Writer that forwards to w.
func NewStreamWriter(w io.Writer) *Writer {
	return binary.NewStreamWriter(w)
}

// Codec describes the wire shape and the traversal shape of T.
//
// Decode writes into v; when it fails the content of v is unspecified and
// callers must discard it. The top-level Read and Unmarshal functions only
// ever return fully decoded values.
//
// Walk enumerates the direct children of v. Nodes enumerates the nodes v
// presents to its parent: grammar and leaf types present themselves, while
// containers present their contents so that they stay transparent.
type Codec[T any] interface {
	Name() string
	Encode(w *Writer, v *T)
	Decode(r *Reader, v *T) error
	Walk(v *T, fn func(Node) error) error
	Nodes(v *T, fn func(Node) error) error
}

// Marshal encodes v into a new byte slice.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	w := NewWriter()
	c.Encode(w, &v)
	if err := w.Err(); err != nil {
		err = errors.Within(err, c.Name())
		Logger().Debug("encode failed", zap.String("type", c.Name()), zap.Error(err))
		return nil, err
	}
	return w.Bytes(), nil
}

// Write encodes v to dst.
func Write[T any](dst io.Writer, c Codec[T], v T) error {
	w := NewStreamWriter(dst)
	c.Encode(w, &v)
	if err := w.Err(); err != nil {
		err = errors.Within(err, c.Name())
		Logger().Debug("encode failed", zap.String("type", c.Name()), zap.Int("written", w.Len()), zap.Error(err))
		return err
	}
	return nil
}

// Read decodes one value from r, leaving r positioned after it.
func Read[T any](r *Reader, c Codec[T]) (T, error) {
	var v T
	if err := c.Decode(r, &v); err != nil {
		var zero T
		return zero, decodeFailed(c.Name(), r, errors.Within(err, c.Name()))
	}
	return v, nil
}

// Unmarshal decodes exactly one value from data. Leftover bytes fail with
// a trailing-data error.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	r := NewBytesReader(data)
	v, err := Read(r, c)
	if err != nil {
		return v, err
	}
	if rem, _ := r.Remaining(); rem > 0 {
		var zero T
		return zero, decodeFailed(c.Name(), r, errors.TrailingData(c.Name(), rem, r.Position()))
	}
	return v, nil
}

// DecodeRegion decodes exactly one value from the next n bytes of r.
// Running out of bytes inside the region is an unexpected end; bytes left
// in the region afterwards are trailing data.
func DecodeRegion[T any](r *Reader, n int, c Codec[T]) (T, error) {
	restore := r.Limit(n)
	defer restore()

	v, err := Read(r, c)
	if err != nil {
		return v, err
	}
	if rem, _ := r.Remaining(); rem > 0 {
		var zero T
		return zero, decodeFailed(c.Name(), r, errors.TrailingData(c.Name(), rem, r.Position()))
	}
	return v, nil
}

func decodeFailed(name string, r *Reader, err error) error {
	Logger().Debug("decode failed",
		zap.String("type", name),
		zap.Int("offset", r.Position()),
		zap.Error(err),
	)
	return err
}
