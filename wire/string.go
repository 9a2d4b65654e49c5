package wire

import (
	"encoding/binary"
)

// shortStringThreshold is the length below which ReadString uses a
// hand-rolled copy instead of a generic string(...) conversion, avoiding
// the setup overhead of the general path for the common short-value case
// (metric names, enum labels, small text columns).
const shortStringThreshold = 12

// WriteString appends a length-prefixed UTF-8 string: a LEB128 length
// followed by the raw bytes.
//
// To avoid two passes over the input, the length is written
// speculatively: one byte is reserved, the body is copied in place, and
// then if the body turned out to need more than one length byte (>127
// bytes), the body is shifted forward to make room and the real
// multi-byte length is written. This keeps the common short-string case
// (the overwhelming majority of column values) to a single reservation
// and a single copy, at the cost of an extra shift only on the rare long
// string.
func WriteString(w *Writer, s string) {
	WriteBytes(w, []byte(s))
}

// WriteBytes appends a length-prefixed byte string, the same wire shape
// as WriteString but without requiring valid UTF-8 (used by FixedString's
// backing store and by callers that already hold a []byte).
func WriteBytes(w *Writer, body []byte) {
	n := len(body)

	w.buf.Grow(1 + n)
	start := w.buf.Len()
	w.buf.ExtendOrGrow(1 + n)

	// Reserve the speculative one-byte length, then the body right after it.
	w.buf.Slice(start, start+1)[0] = 0
	copy(w.buf.Slice(start+1, start+1+n), body)

	if n < 0x80 {
		w.buf.Slice(start, start+1)[0] = byte(n)

		return
	}

	// The length didn't fit in one byte: compute how many it actually
	// needs, make room by shifting the body forward, and write the real
	// varint length in its place.
	size := UvarintSize(uint64(n))
	w.buf.Grow(size - 1)
	w.buf.ExtendOrGrow(size - 1)

	full := w.buf.Slice(start, start+size+n)
	copy(full[size:], full[1:1+n])
	binary.PutUvarint(full[:size], uint64(n))
}

// ReadString decodes a length-prefixed UTF-8 string starting at the
// cursor's offset.
func ReadString(c *Cursor) (string, error) {
	data, err := ReadVarBytes(c)
	if err != nil {
		return "", err
	}
	if len(data) < shortStringThreshold {
		return copyShortString(data), nil
	}

	return string(data), nil
}

// ReadVarBytes decodes a length-prefixed byte string and returns a
// zero-copy view into the cursor's backing array.
func ReadVarBytes(c *Cursor) ([]byte, error) {
	start := c.Offset
	n, err := ReadUvarint(c)
	if err != nil {
		return nil, err
	}

	data, err := ReadRaw(c, int(n))
	if err != nil {
		// Restore the cursor to where the string began: the length byte(s)
		// must be re-read too once more data arrives, not just the body.
		c.Offset = start

		return nil, err
	}

	return data, nil
}

// copyShortString builds a string from a small byte slice via an explicit
// byte-by-byte copy rather than Go's generic string(b) conversion, which
// for very small slices spends more time on call overhead than the copy
// itself.
func copyShortString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	buf := make([]byte, len(b))
	for i := range b {
		buf[i] = b[i]
	}

	return string(buf)
}
