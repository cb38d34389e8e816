package terrain

import (
	"bytes"
	"io"
)

// maxVarintShift bounds how many continuation bytes a varint may carry
// before the stream is considered malformed; 10*7 = 70 bits comfortably
// covers any uint64, including ZigZag-encoded residuals and header counts.
const maxVarintShift = 70

// WriteVarint appends the little-endian base-128 varint encoding of v to
// buf. At least one byte is always written; v == 0 encodes as a single
// 0x00 byte.
func WriteVarint(buf *bytes.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf.WriteByte(b | 0x80)
			continue
		}
		buf.WriteByte(b)
		return
	}
}

// ReadVarint reads a little-endian base-128 varint from r. It returns
// ErrTruncatedVarint if the stream ends (or exceeds the maximum shift)
// before a terminating byte (high bit clear) is read.
func ReadVarint(r io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncatedVarint
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= maxVarintShift {
			return 0, ErrTruncatedVarint
		}
	}
}
