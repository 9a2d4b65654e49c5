package wire

import (
	"encoding/binary"
	"math"
)

// Float32NaN and Float64NaN carry the exact 4/8-byte IEEE-754 bit pattern
// of a NaN, bypassing Go's float setters, which canonicalize every NaN to
// a single quiet-NaN bit pattern on store. Decoding a signaling NaN into
// a plain float64 and re-encoding it would silently turn it into a quiet
// NaN; wrapping the original bytes is what makes the round trip bit-exact.
type Float32NaN struct{ Bits [4]byte }

// Float64NaN is the 8-byte counterpart of Float32NaN.
type Float64NaN struct{ Bits [8]byte }

// ReadFloat32Bits reads the raw 4 little-endian bytes of a float32.
func ReadFloat32Bits(c *Cursor) ([4]byte, error) {
	if err := c.require(4); err != nil {
		return [4]byte{}, err
	}
	var b [4]byte
	copy(b[:], c.Data[c.Offset:c.Offset+4])
	c.Offset += 4

	return b, nil
}

// ReadFloat64Bits reads the raw 8 little-endian bytes of a float64.
func ReadFloat64Bits(c *Cursor) ([8]byte, error) {
	if err := c.require(8); err != nil {
		return [8]byte{}, err
	}
	var b [8]byte
	copy(b[:], c.Data[c.Offset:c.Offset+8])
	c.Offset += 8

	return b, nil
}

// DecodeFloat32 interprets 4 little-endian bytes as a float32. If the bit
// pattern is NaN, it returns (0, Float32NaN{bits}, true) so the caller can
// preserve the exact payload; otherwise it returns (value, zero, false).
func DecodeFloat32(b [4]byte) (float32, Float32NaN, bool) {
	bits := binary.LittleEndian.Uint32(b[:])
	v := math.Float32frombits(bits)
	if math.IsNaN(float64(v)) {
		return 0, Float32NaN{Bits: b}, true
	}

	return v, Float32NaN{}, false
}

// DecodeFloat64 interprets 8 little-endian bytes as a float64, returning
// the NaN wrapper when the bits decode to NaN.
func DecodeFloat64(b [8]byte) (float64, Float64NaN, bool) {
	bits := binary.LittleEndian.Uint64(b[:])
	v := math.Float64frombits(bits)
	if math.IsNaN(v) {
		return 0, Float64NaN{Bits: b}, true
	}

	return v, Float64NaN{}, false
}

// WriteFloat32 appends a plain float32 using the standard IEEE-754 bit pattern.
func WriteFloat32(w *Writer, v float32) {
	WriteUint32(w, math.Float32bits(v))
}

// WriteFloat32NaN appends the exact stored bytes of a NaN wrapper,
// bypassing the float32 setter so the original payload survives.
func WriteFloat32NaN(w *Writer, v Float32NaN) {
	WriteRaw(w, v.Bits[:])
}

// WriteFloat64 appends a plain float64 using the standard IEEE-754 bit pattern.
func WriteFloat64(w *Writer, v float64) {
	WriteUint64(w, math.Float64bits(v))
}

// WriteFloat64NaN appends the exact stored bytes of a NaN wrapper.
func WriteFloat64NaN(w *Writer, v Float64NaN) {
	WriteRaw(w, v.Bits[:])
}
