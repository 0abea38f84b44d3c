package binary

import (
	"bytes"
	"io"

	"github.com/wippyai/wasmbin/errors"
)

// Writer provides sticky-error writing utilities for binary encoding.
// The first failure is recorded and every later write becomes a no-op.
type Writer struct {
	w       io.Writer
	buf     *bytes.Buffer
	err     error
	n       int
	scratch [10]byte
}

// NewWriter creates a Writer backed by an in-memory buffer.
func NewWriter() *Writer {
	buf := &bytes.Buffer{}
	return &Writer{w: buf, buf: buf}
}

// NewStreamWriter creates a Writer that forwards to w.
func NewStreamWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Bytes returns the written bytes. It is nil for stream writers.
func (w *Writer) Bytes() []byte {
	if w.buf == nil {
		return nil
	}
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.n
}

// Err returns the first error recorded by the writer.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless an earlier error is already recorded.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += n
	if err != nil {
		w.err = errors.IO(errors.PhaseEncode, w.n, err)
	}
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.scratch[0] = b
	w.write(w.scratch[:1])
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.write(data)
}

// WriteBool writes 0x01 for true and 0x00 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
}

// WriteU32 writes an unsigned LEB128 encoded uint32.
func (w *Writer) WriteU32(v uint32) {
	w.write(AppendU32(w.scratch[:0], v))
}

// WriteU64 writes an unsigned LEB128 encoded uint64.
func (w *Writer) WriteU64(v uint64) {
	w.write(AppendU64(w.scratch[:0], v))
}

// WriteS32 writes a signed LEB128 encoded int32.
func (w *Writer) WriteS32(v int32) {
	w.write(AppendS64(w.scratch[:0], int64(v)))
}

// WriteS64 writes a signed LEB128 encoded int64.
func (w *Writer) WriteS64(v int64) {
	w.write(AppendS64(w.scratch[:0], v))
}
