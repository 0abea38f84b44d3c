package binary

import (
	"bufio"
	"bytes"
	"io"

	"github.com/wippyai/wasmbin/errors"
)

const noLimit = -1

// lener is implemented by in-memory sources that know how much is left.
type lener interface {
	Len() int
}

// Reader wraps an io.ByteReader with position tracking and LEB128 read methods.
// All failures are returned as *errors.Error carrying the current position.
type Reader struct {
	r     io.ByteReader
	pos   int
	limit int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r, limit: noLimit}
}

// NewBytesReader creates a Reader over an in-memory byte slice.
func NewBytesReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data))
}

// FromReader adapts an arbitrary io.Reader. Readers that do not implement
// io.ByteReader are buffered and may be read past the last decoded value.
func FromReader(r io.Reader) *Reader {
	if br, ok := r.(io.ByteReader); ok {
		return NewReader(br)
	}
	return NewReader(bufio.NewReader(r))
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining reports how many bytes are left, when that is knowable.
func (r *Reader) Remaining() (int, bool) {
	if r.limit != noLimit {
		return r.limit - r.pos, true
	}
	if l, ok := r.r.(lener); ok {
		return l.Len(), true
	}
	return 0, false
}

// Limit bounds the reader to the next n bytes and returns a function that
// lifts the bound again. Bounds nest; an inner bound never extends an outer one.
func (r *Reader) Limit(n int) (restore func()) {
	prev := r.limit
	end := r.pos + n
	if prev != noLimit && end > prev {
		end = prev
	}
	r.limit = end
	return func() { r.limit = prev }
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.limit != noLimit && r.pos >= r.limit {
		return 0, errors.UnexpectedEnd(r.pos, io.EOF)
	}
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.wrapError(err)
	}
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// ReadBool reads a single byte that must be 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	start := r.pos
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.InvalidBoolean(b, start)
	}
}

// ReadU32 reads an unsigned LEB128 encoded uint32.
func (r *Reader) ReadU32() (uint32, error) {
	start := r.pos
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 28 && b&0xf0 != 0 {
			return 0, errors.VarintOutOfRange(32, start)
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// ReadU64 reads an unsigned LEB128 encoded uint64.
func (r *Reader) ReadU64() (uint64, error) {
	start := r.pos
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 63 && b&0xfe != 0 {
			return 0, errors.VarintOutOfRange(64, start)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// ReadS32 reads a signed LEB128 encoded int32.
func (r *Reader) ReadS32() (int32, error) {
	start := r.pos
	var result int32
	var shift uint
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 28 {
			// The final group holds 4 payload bits; the rest must repeat the sign.
			if b&0x80 != 0 || (b&0x78 != 0 && b&0x78 != 0x78) {
				return 0, errors.VarintOutOfRange(32, start)
			}
		}
		result |= int32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	// Sign extend
	if shift < 32 && b&0x40 != 0 {
		result |= ^int32(0) << shift
	}
	return result, nil
}

// ReadS64 reads a signed LEB128 encoded int64.
func (r *Reader) ReadS64() (int64, error) {
	start := r.pos
	var result int64
	var shift uint
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 63 && b != 0x00 && b != 0x7f {
			return 0, errors.VarintOutOfRange(64, start)
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	// Sign extend
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}
	return result, nil
}

func (r *Reader) wrapError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.UnexpectedEnd(r.pos, err)
	}
	return errors.IO(errors.PhaseDecode, r.pos, err)
}
