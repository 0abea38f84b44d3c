package binary

// LEB128 encoding utilities. Encoders always produce the minimal form.

// AppendU32 appends the unsigned LEB128 encoding of v to dst.
func AppendU32(dst []byte, v uint32) []byte {
	return AppendU64(dst, uint64(v))
}

// AppendU64 appends the unsigned LEB128 encoding of v to dst.
func AppendU64(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// AppendS64 appends the signed LEB128 encoding of v to dst.
// Signed 32-bit values share this encoding.
func AppendS64(dst []byte, v int64) []byte {
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// DecodeU32 decodes an unsigned LEB128 uint32 from the start of data and
// returns the value with the number of bytes consumed.
func DecodeU32(data []byte) (uint32, int, error) {
	r := NewBytesReader(data)
	v, err := r.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	return v, r.Position(), nil
}

// DecodeS32 decodes a signed LEB128 int32 from the start of data.
func DecodeS32(data []byte) (int32, int, error) {
	r := NewBytesReader(data)
	v, err := r.ReadS32()
	if err != nil {
		return 0, 0, err
	}
	return v, r.Position(), nil
}

// DecodeU64 decodes an unsigned LEB128 uint64 from the start of data.
func DecodeU64(data []byte) (uint64, int, error) {
	r := NewBytesReader(data)
	v, err := r.ReadU64()
	if err != nil {
		return 0, 0, err
	}
	return v, r.Position(), nil
}

// DecodeS64 decodes a signed LEB128 int64 from the start of data.
func DecodeS64(data []byte) (int64, int, error) {
	r := NewBytesReader(data)
	v, err := r.ReadS64()
	if err != nil {
		return 0, 0, err
	}
	return v, r.Position(), nil
}
