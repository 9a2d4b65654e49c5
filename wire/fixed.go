package wire

import "encoding/binary"

// ClickHouse's RowBinary and Native wire formats are always little-endian
// (unlike endian.EndianEngine, used where a caller needs to detect or
// compare against host byte order), so these functions go straight to
// encoding/binary.LittleEndian rather than threading an engine value
// through every call.

// ReadUint8 reads one byte as an unsigned 8-bit integer.
func ReadUint8(c *Cursor) (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.Data[c.Offset]
	c.Offset++

	return v, nil
}

// ReadInt8 reads one byte as a signed 8-bit integer (two's complement).
func ReadInt8(c *Cursor) (int8, error) {
	v, err := ReadUint8(c)

	return int8(v), err
}

// ReadUint16 reads a little-endian unsigned 16-bit integer.
func ReadUint16(c *Cursor) (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.Data[c.Offset:])
	c.Offset += 2

	return v, nil
}

// ReadInt16 reads a little-endian signed 16-bit integer.
func ReadInt16(c *Cursor) (int16, error) {
	v, err := ReadUint16(c)

	return int16(v), err
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func ReadUint32(c *Cursor) (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.Data[c.Offset:])
	c.Offset += 4

	return v, nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func ReadInt32(c *Cursor) (int32, error) {
	v, err := ReadUint32(c)

	return int32(v), err
}

// ReadUint64 reads a little-endian unsigned 64-bit integer.
func ReadUint64(c *Cursor) (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.Data[c.Offset:])
	c.Offset += 8

	return v, nil
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func ReadInt64(c *Cursor) (int64, error) {
	v, err := ReadUint64(c)

	return int64(v), err
}

// ReadRaw returns a zero-copy view of the next n bytes and advances the
// cursor past them. The returned slice aliases Cursor.Data; callers that
// hand it further out (e.g. the Array fast path) rely on the streaming
// reader never compacting its buffer in place (see the stream package).
func ReadRaw(c *Cursor, n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	v := c.Data[c.Offset : c.Offset+n]
	c.Offset += n

	return v, nil
}

// WriteUint8 appends an unsigned 8-bit integer.
func WriteUint8(w *Writer, v uint8) { w.buf.AppendByte(v) }

// WriteInt8 appends a signed 8-bit integer as its two's-complement byte.
func WriteInt8(w *Writer, v int8) { w.buf.AppendByte(uint8(v)) }

// WriteUint16 appends a little-endian unsigned 16-bit integer.
func WriteUint16(w *Writer, v uint16) {
	w.buf.Grow(2)
	w.buf.B = binary.LittleEndian.AppendUint16(w.buf.B, v)
}

// WriteInt16 appends a little-endian signed 16-bit integer.
func WriteInt16(w *Writer, v int16) { WriteUint16(w, uint16(v)) }

// WriteUint32 appends a little-endian unsigned 32-bit integer.
func WriteUint32(w *Writer, v uint32) {
	w.buf.Grow(4)
	w.buf.B = binary.LittleEndian.AppendUint32(w.buf.B, v)
}

// WriteInt32 appends a little-endian signed 32-bit integer.
func WriteInt32(w *Writer, v int32) { WriteUint32(w, uint32(v)) }

// WriteUint64 appends a little-endian unsigned 64-bit integer.
func WriteUint64(w *Writer, v uint64) {
	w.buf.Grow(8)
	w.buf.B = binary.LittleEndian.AppendUint64(w.buf.B, v)
}

// WriteInt64 appends a little-endian signed 64-bit integer.
func WriteInt64(w *Writer, v int64) { WriteUint64(w, uint64(v)) }

// WriteRaw appends n raw bytes verbatim (used for FixedString bodies,
// UUID/IPv6 groups, and Decimal limb bytes).
func WriteRaw(w *Writer, data []byte) {
	w.buf.Grow(len(data))
	w.buf.Append(data)
}
