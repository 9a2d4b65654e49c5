package wire

import (
	"encoding/binary"

	"github.com/lithiumdb/chwire/errs"
)

// LEB128 varints: seven payload bits per byte, little-endian, with the
// high bit set on every byte but the last. This is bit-for-bit the same
// format as Go's own encoding/binary.Uvarint, so the actual bit twiddling
// is delegated to the standard library; what this package adds on top is
// Cursor-aware bounds checking that turns "not enough bytes yet" into
// ErrUnderflow rather than the zero value encoding/binary.Uvarint
// returns on its own.

// MaxVarintLen32 is the maximum number of bytes a LEB128-encoded 32-bit
// value can occupy.
const MaxVarintLen32 = binary.MaxVarintLen32

// MaxVarintLen64 is the maximum number of bytes a LEB128-encoded 64-bit
// value can occupy.
const MaxVarintLen64 = binary.MaxVarintLen64

// ReadUvarint decodes a LEB128-encoded non-negative integer starting at
// the cursor's offset. If the buffer ends before a terminating byte (high
// bit clear), it returns ErrUnderflow without advancing the cursor. If
// more than MaxVarintLen64 bytes are consumed without terminating, the
// varint is malformed (not merely short) and ErrMalformedValue is
// returned instead.
func ReadUvarint(c *Cursor) (uint64, error) {
	v, n := binary.Uvarint(c.Data[c.Offset:])
	switch {
	case n > 0:
		c.Offset += n

		return v, nil
	case n == 0:
		return 0, errs.NewOffsetError(c.Offset, 1, errs.ErrUnderflow)
	default: // n < 0: value overflows 64 bits
		return 0, errs.NewOffsetError(c.Offset, 0, errs.ErrMalformedValue)
	}
}

// WriteUvarint appends v to w in LEB128 form: the high bit of every byte
// but the last is set, seven payload bits per byte, least-significant
// byte first.
func WriteUvarint(w *Writer, v uint64) {
	w.buf.Grow(MaxVarintLen64)
	w.buf.B = binary.AppendUvarint(w.buf.B, v)
}

// UvarintSize returns the number of bytes WriteUvarint would emit for v,
// without writing anything. Used by WriteString's length-patching fast
// path to decide whether the speculative one-byte reservation was enough.
func UvarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
