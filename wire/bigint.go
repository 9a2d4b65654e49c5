package wire

import "encoding/binary"

// Int128/Int256 and their unsigned counterparts are split into 64-bit
// limbs, written low limb first (little endian at the limb level, same
// as within each limb). The most-significant limb carries the sign for
// signed types; all lower limbs are always unsigned.

// Uint128 is an unsigned 128-bit integer as two 64-bit limbs.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is a signed 128-bit integer as two 64-bit limbs; Hi carries the sign.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Uint256 is an unsigned 256-bit integer as four 64-bit limbs, least
// significant first.
type Uint256 struct {
	W0, W1, W2 uint64
	W3         uint64
}

// Int256 is a signed 256-bit integer as four 64-bit limbs, least
// significant first; W3 carries the sign.
type Int256 struct {
	W0, W1, W2 uint64
	W3         int64
}

// ReadUint128 reads a little-endian unsigned 128-bit integer.
func ReadUint128(c *Cursor) (Uint128, error) {
	if err := c.require(16); err != nil {
		return Uint128{}, err
	}
	lo := binary.LittleEndian.Uint64(c.Data[c.Offset:])
	hi := binary.LittleEndian.Uint64(c.Data[c.Offset+8:])
	c.Offset += 16

	return Uint128{Lo: lo, Hi: hi}, nil
}

// ReadInt128 reads a little-endian signed 128-bit integer.
func ReadInt128(c *Cursor) (Int128, error) {
	u, err := ReadUint128(c)
	if err != nil {
		return Int128{}, err
	}

	return Int128{Lo: u.Lo, Hi: int64(u.Hi)}, nil
}

// ReadUint256 reads a little-endian unsigned 256-bit integer.
func ReadUint256(c *Cursor) (Uint256, error) {
	if err := c.require(32); err != nil {
		return Uint256{}, err
	}
	base := c.Offset
	w0 := binary.LittleEndian.Uint64(c.Data[base:])
	w1 := binary.LittleEndian.Uint64(c.Data[base+8:])
	w2 := binary.LittleEndian.Uint64(c.Data[base+16:])
	w3 := binary.LittleEndian.Uint64(c.Data[base+24:])
	c.Offset += 32

	return Uint256{W0: w0, W1: w1, W2: w2, W3: w3}, nil
}

// ReadInt256 reads a little-endian signed 256-bit integer.
func ReadInt256(c *Cursor) (Int256, error) {
	u, err := ReadUint256(c)
	if err != nil {
		return Int256{}, err
	}

	return Int256{W0: u.W0, W1: u.W1, W2: u.W2, W3: int64(u.W3)}, nil
}

// WriteUint128 appends a little-endian unsigned 128-bit integer.
func WriteUint128(w *Writer, v Uint128) {
	WriteUint64(w, v.Lo)
	WriteUint64(w, v.Hi)
}

// WriteInt128 appends a little-endian signed 128-bit integer.
func WriteInt128(w *Writer, v Int128) {
	WriteUint64(w, v.Lo)
	WriteUint64(w, uint64(v.Hi))
}

// WriteUint256 appends a little-endian unsigned 256-bit integer.
func WriteUint256(w *Writer, v Uint256) {
	WriteUint64(w, v.W0)
	WriteUint64(w, v.W1)
	WriteUint64(w, v.W2)
	WriteUint64(w, v.W3)
}

// WriteInt256 appends a little-endian signed 256-bit integer.
func WriteInt256(w *Writer, v Int256) {
	WriteUint64(w, v.W0)
	WriteUint64(w, v.W1)
	WriteUint64(w, v.W2)
	WriteUint64(w, uint64(v.W3))
}

// Neg128 returns the two's-complement negation of an unsigned 128-bit
// magnitude, used by DecimalCodec to encode negative decimal values.
func Neg128(v Uint128) Uint128 {
	lo := ^v.Lo + 1
	hi := ^v.Hi
	if lo == 0 { // carry out of the low limb
		hi++
	}

	return Uint128{Lo: lo, Hi: hi}
}

// Neg256 returns the two's-complement negation of an unsigned 256-bit magnitude.
func Neg256(v Uint256) Uint256 {
	w0 := ^v.W0 + 1
	c0 := uint64(0)
	if w0 == 0 {
		c0 = 1
	}
	w1 := ^v.W1 + c0
	c1 := uint64(0)
	if c0 == 1 && w1 == 0 {
		c1 = 1
	}
	w2 := ^v.W2 + c1
	c2 := uint64(0)
	if c1 == 1 && w2 == 0 {
		c2 = 1
	}
	w3 := ^v.W3 + c2

	return Uint256{W0: w0, W1: w1, W2: w2, W3: w3}
}

// IsNeg128 reports whether the signed interpretation of v's top limb is negative.
func IsNeg128(v Uint128) bool { return int64(v.Hi) < 0 }

// IsNeg256 reports whether the signed interpretation of v's top limb is negative.
func IsNeg256(v Uint256) bool { return int64(v.W3) < 0 }
