package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// nibbleLUT maps an ASCII character code to its hex nibble value, 0xFF
// for anything that isn't a hex digit. A 256-entry table turns hex
// parsing into a single indexed load instead of a branch per character.
var nibbleLUT = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 0xFF
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		t[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'F'; c++ {
		t[c] = c - 'A' + 10
	}

	return t
}()

// hexLUT maps a byte value to its two-character lowercase hex encoding,
// avoiding a fmt.Sprintf per byte on decode.
var hexLUT = func() [256][2]byte {
	var t [256][2]byte
	const digits = "0123456789abcdef"
	for i := range t {
		t[i] = [2]byte{digits[i>>4], digits[i&0xF]}
	}

	return t
}()

// uuidCodec implements ClickHouse's UUID: the canonical 36-character
// hyphenated textual form on the API side, two little-endian 64-bit
// halves on the wire with each half's bytes in the reverse of their
// textual order.
type uuidCodec struct{ base }

func parseHexByte(s string, i int) (byte, error) {
	hi := nibbleLUT[s[i]]
	lo := nibbleLUT[s[i+1]]
	if hi == 0xFF || lo == 0xFF {
		return 0, errs.ErrMalformedValue
	}

	return hi<<4 | lo, nil
}

// uuidHalves extracts the two 8-byte halves (in textual byte order) from
// a 36-character hyphenated UUID string.
func uuidHalves(s string) (hi, lo [8]byte, err error) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return hi, lo, errs.ErrMalformedValue
	}

	hex := make([]byte, 0, 32)
	for i, c := range []byte(s) {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			continue
		}
		hex = append(hex, c)
	}

	for i := range 8 {
		b, e := parseHexByte(string(hex), i*2)
		if e != nil {
			return hi, lo, e
		}
		hi[i] = b
	}
	for i := range 8 {
		b, e := parseHexByte(string(hex), 16+i*2)
		if e != nil {
			return hi, lo, e
		}
		lo[i] = b
	}

	return hi, lo, nil
}

func reverse8(b [8]byte) [8]byte {
	for i, j := 0, 7; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

func (c *uuidCodec) Encode(w *wire.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: expected string, got %T", errs.ErrMalformedValue, v)
	}

	hi, lo, err := uuidHalves(s)
	if err != nil {
		return err
	}
	hiR := reverse8(hi)
	loR := reverse8(lo)
	wire.WriteRaw(w, hiR[:])
	wire.WriteRaw(w, loR[:])

	return nil
}

func (c *uuidCodec) Decode(cur *wire.Cursor) (any, error) {
	raw, err := wire.ReadRaw(cur, 16)
	if err != nil {
		return nil, err
	}

	var hi, lo [8]byte
	copy(hi[:], raw[0:8])
	copy(lo[:], raw[8:16])
	hi = reverse8(hi)
	lo = reverse8(lo)

	buf := make([]byte, 0, 36)
	emit := func(b byte) {
		h := hexLUT[b]
		buf = append(buf, h[0], h[1])
	}
	for i, b := range hi {
		emit(b)
		if i == 3 || i == 5 || i == 7 {
			buf = append(buf, '-')
		}
	}
	for i, b := range lo {
		emit(b)
		if i == 1 {
			buf = append(buf, '-')
		}
	}

	return string(buf), nil
}
