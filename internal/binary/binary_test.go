package binary

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	werrors "github.com/wippyai/wasmbin/errors"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if r.Position() != 3 {
		t.Errorf("final position: got %d, want 3", r.Position())
	}

	_, err := r.ReadByte()
	if !errors.Is(err, werrors.ErrUnexpectedEnd) {
		t.Errorf("expected unexpected end, got %v", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF cause, got %v", err)
	}
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(bytes.NewReader(data))

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}

	if r.Position() != 3 {
		t.Errorf("position: got %d, want 3", r.Position())
	}

	_, err = r.ReadBytes(10)
	if !errors.Is(err, werrors.ErrUnexpectedEnd) {
		t.Errorf("expected unexpected end reading past EOF, got %v", err)
	}
}

func TestReaderReadBool(t *testing.T) {
	r := NewBytesReader([]byte{0x00, 0x01, 0x02})

	v, err := r.ReadBool()
	if err != nil || v {
		t.Errorf("ReadBool(0x00): got %v, %v", v, err)
	}
	v, err = r.ReadBool()
	if err != nil || !v {
		t.Errorf("ReadBool(0x01): got %v, %v", v, err)
	}
	_, err = r.ReadBool()
	if !errors.Is(err, werrors.ErrInvalidBoolean) {
		t.Errorf("ReadBool(0x02): expected invalid boolean, got %v", err)
	}
	var e *werrors.Error
	if errors.As(err, &e) && e.Offset != 2 {
		t.Errorf("offset: got %d, want 2", e.Offset)
	}
}

func TestReaderReadU32(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
		// Non-minimal but in range.
		{[]byte{0x80, 0x00}, 0},
	}

	for _, tt := range tests {
		r := NewReader(bytes.NewReader(tt.encoded))
		got, err := r.ReadU32()
		if err != nil {
			t.Errorf("ReadU32(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU32(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
		if r.Position() != len(tt.encoded) {
			t.Errorf("ReadU32(%v): consumed %d bytes, want %d", tt.encoded, r.Position(), len(tt.encoded))
		}
	}
}

func TestReaderReadU32OutOfRange(t *testing.T) {
	tests := [][]byte{
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
		{0xff, 0xff, 0xff, 0xff, 0x10},
		{0xff, 0xff, 0xff, 0xff, 0x7f},
	}
	for _, data := range tests {
		r := NewReader(bytes.NewReader(data))
		_, err := r.ReadU32()
		if !errors.Is(err, werrors.ErrVarintOutOfRange) {
			t.Errorf("ReadU32(%v): expected out of range, got %v", data, err)
		}
	}
}

func TestReaderReadU32Truncated(t *testing.T) {
	data := []byte{0x80}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadU32()
	if !errors.Is(err, werrors.ErrUnexpectedEnd) {
		t.Errorf("expected unexpected end for truncated LEB128, got %v", err)
	}
}

func TestReaderReadU64(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, math.MaxUint64},
	}

	for _, tt := range tests {
		r := NewReader(bytes.NewReader(tt.encoded))
		got, err := r.ReadU64()
		if err != nil {
			t.Errorf("ReadU64(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU64(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadU64Overflow(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadU64()
	if !errors.Is(err, werrors.ErrVarintOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestReaderReadS32(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    int32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, -1},
		{[]byte{0x3f}, 63},
		{[]byte{0x40}, -64},
		{[]byte{0xc0, 0x00}, 64},
		{[]byte{0xbf, 0x7f}, -65},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x07}, math.MaxInt32},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x78}, math.MinInt32},
	}

	for _, tt := range tests {
		r := NewReader(bytes.NewReader(tt.encoded))
		got, err := r.ReadS32()
		if err != nil {
			t.Errorf("ReadS32(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadS32(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadS32Overflow(t *testing.T) {
	tests := [][]byte{
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
		{0xff, 0xff, 0xff, 0xff, 0x08},
		{0x80, 0x80, 0x80, 0x80, 0x70},
	}
	for _, data := range tests {
		r := NewReader(bytes.NewReader(data))
		_, err := r.ReadS32()
		if !errors.Is(err, werrors.ErrVarintOutOfRange) {
			t.Errorf("ReadS32(%v): expected out of range, got %v", data, err)
		}
	}
}

func TestReaderReadS64(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, -1},
		{[]byte{0x3f}, 63},
		{[]byte{0x40}, -64},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}, math.MaxInt64},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}, math.MinInt64},
	}

	for _, tt := range tests {
		r := NewReader(bytes.NewReader(tt.encoded))
		got, err := r.ReadS64()
		if err != nil {
			t.Errorf("ReadS64(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadS64(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadS64Overflow(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadS64()
	if !errors.Is(err, werrors.ErrVarintOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestReaderRemaining(t *testing.T) {
	r := NewBytesReader([]byte{0x01, 0x02, 0x03})
	r.ReadByte()
	n, ok := r.Remaining()
	if !ok || n != 2 {
		t.Errorf("Remaining: got %d, %v, want 2, true", n, ok)
	}

	custom := NewReader(&customByteReader{data: []byte{0x01}})
	if _, ok := custom.Remaining(); ok {
		t.Error("Remaining should be unknown for a plain ByteReader")
	}
}

func TestReaderLimit(t *testing.T) {
	r := NewBytesReader([]byte{0x01, 0x02, 0x03, 0x04})
	r.ReadByte()

	restore := r.Limit(2)
	if n, _ := r.Remaining(); n != 2 {
		t.Errorf("Remaining inside limit: got %d, want 2", n)
	}

	inner := r.Limit(10)
	if n, _ := r.Remaining(); n != 2 {
		t.Errorf("inner limit must not extend outer: got %d, want 2", n)
	}
	inner()

	if _, err := r.ReadBytes(2); err != nil {
		t.Fatalf("ReadBytes within limit: %v", err)
	}
	if _, err := r.ReadByte(); !errors.Is(err, werrors.ErrUnexpectedEnd) {
		t.Errorf("expected unexpected end at limit, got %v", err)
	}
	restore()

	b, err := r.ReadByte()
	if err != nil || b != 0x04 {
		t.Errorf("ReadByte after restore: got 0x%02x, %v", b, err)
	}
}

type failingByteReader struct{}

func (failingByteReader) ReadByte() (byte, error) {
	return 0, errors.New("device gone")
}

func TestReaderIOError(t *testing.T) {
	r := NewReader(failingByteReader{})
	_, err := r.ReadByte()
	var e *werrors.Error
	if !errors.As(err, &e) || e.Kind != werrors.KindIO {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestFromReader(t *testing.T) {
	r := FromReader(io.MultiReader(bytes.NewReader([]byte{0xe5}), bytes.NewReader([]byte{0x8e, 0x26})))
	got, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 624485 {
		t.Errorf("ReadU32: got %d, want 624485", got)
	}
}

func TestWriterBasic(t *testing.T) {
	w := NewWriter()
	if w.Len() != 0 {
		t.Errorf("initial Len: got %d, want 0", w.Len())
	}

	w.Byte(0x42)
	if w.Len() != 1 {
		t.Errorf("Len after Byte: got %d, want 1", w.Len())
	}

	w.WriteBytes([]byte{0x01, 0x02, 0x03})
	w.WriteBool(true)
	w.WriteBool(false)
	if w.Len() != 6 {
		t.Errorf("Len after writes: got %d, want 6", w.Len())
	}

	got := w.Bytes()
	want := []byte{0x42, 0x01, 0x02, 0x03, 0x01, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %v, want %v", got, want)
	}
}

func TestWriterWriteU32(t *testing.T) {
	tests := []struct {
		want  []byte
		value uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		w := NewWriter()
		w.WriteU32(tt.value)
		got := w.Bytes()
		if !bytes.Equal(got, tt.want) {
			t.Errorf("WriteU32(%d): got %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestWriterWriteS32(t *testing.T) {
	tests := []struct {
		want  []byte
		value int32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7f}, -1},
		{[]byte{0xc0, 0x00}, 64},
		{[]byte{0xbf, 0x7f}, -65},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x07}, math.MaxInt32},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x78}, math.MinInt32},
	}

	for _, tt := range tests {
		w := NewWriter()
		w.WriteS32(tt.value)
		got := w.Bytes()
		if !bytes.Equal(got, tt.want) {
			t.Errorf("WriteS32(%d): got %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestWriterWriteS64(t *testing.T) {
	tests := []struct {
		want  []byte
		value int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, -1},
		{[]byte{0x3f}, 63},
		{[]byte{0x40}, -64},
		{[]byte{0xc0, 0x00}, 64},
		{[]byte{0xbf, 0x7f}, -65},
	}

	for _, tt := range tests {
		w := NewWriter()
		w.WriteS64(tt.value)
		got := w.Bytes()
		if !bytes.Equal(got, tt.want) {
			t.Errorf("WriteS64(%d): got %v, want %v", tt.value, got, tt.want)
		}
	}
}

type shortWriter struct {
	limit int
	buf   bytes.Buffer
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if s.buf.Len()+len(p) > s.limit {
		return 0, io.ErrShortWrite
	}
	return s.buf.Write(p)
}

func TestStreamWriterStickyError(t *testing.T) {
	sink := &shortWriter{limit: 2}
	w := NewStreamWriter(sink)
	w.Byte(0x01)
	w.Byte(0x02)
	w.WriteU32(300)
	w.Byte(0x03)

	if !errors.Is(w.Err(), io.ErrShortWrite) {
		t.Fatalf("expected short write, got %v", w.Err())
	}
	if w.Bytes() != nil {
		t.Error("stream writer should not expose a buffer")
	}
	if !bytes.Equal(sink.buf.Bytes(), []byte{0x01, 0x02}) {
		t.Errorf("sink: got %v, want [1 2]", sink.buf.Bytes())
	}
}

func TestRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU32(12345)
	w.WriteS64(-9876)
	w.WriteU64(1 << 40)
	w.WriteS32(-300)

	r := NewReader(bytes.NewReader(w.Bytes()))

	u32, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if u32 != 12345 {
		t.Errorf("ReadU32: got %d, want 12345", u32)
	}

	s64, err := r.ReadS64()
	if err != nil {
		t.Fatalf("ReadS64: %v", err)
	}
	if s64 != -9876 {
		t.Errorf("ReadS64: got %d, want -9876", s64)
	}

	u64, err := r.ReadU64()
	if err != nil {
		t.Fatalf("ReadU64: %v", err)
	}
	if u64 != 1<<40 {
		t.Errorf("ReadU64: got %d, want %d", u64, uint64(1<<40))
	}

	s32, err := r.ReadS32()
	if err != nil {
		t.Fatalf("ReadS32: %v", err)
	}
	if s32 != -300 {
		t.Errorf("ReadS32: got %d, want -300", s32)
	}
}

func TestDecodeHelpers(t *testing.T) {
	v, n, err := DecodeU32([]byte{0xe5, 0x8e, 0x26, 0xff})
	if err != nil || v != 624485 || n != 3 {
		t.Errorf("DecodeU32: got %d, %d, %v", v, n, err)
	}

	s, n, err := DecodeS32([]byte{0xbf, 0x7f})
	if err != nil || s != -65 || n != 2 {
		t.Errorf("DecodeS32: got %d, %d, %v", s, n, err)
	}

	_, _, err = DecodeU64([]byte{0x80})
	if !errors.Is(err, werrors.ErrUnexpectedEnd) {
		t.Errorf("DecodeU64 truncated: got %v", err)
	}

	s64, n, err := DecodeS64([]byte{0x40})
	if err != nil || s64 != -64 || n != 1 {
		t.Errorf("DecodeS64: got %d, %d, %v", s64, n, err)
	}
}

// customByteReader is a ByteReader that is NOT a *bytes.Reader
type customByteReader struct {
	data []byte
	pos  int
}

func (c *customByteReader) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}
