// Package wire implements the primitive I/O layer shared by every codec:
// LEB128 varints, little-endian fixed-width integers, 128/256-bit limb
// splitting, length-prefixed strings, and the bounds-checked Cursor that
// every decode path reads through.
//
// Every read function in this package follows the same contract: on
// success it advances Cursor.Offset past the value it read; on failure
// it leaves Cursor.Offset exactly where it was when the call began, so a
// caller (in particular the streaming reader's retry loop) can safely
// retry the same call after pulling more bytes.
package wire

import "github.com/lithiumdb/chwire/errs"

// Options carries decode-time choices that are orthogonal to any single
// type's codec but change how a value is materialized. Today there is
// exactly one: MapAsArray.
type Options struct {
	// MapAsArray makes MapCodec decode to an ordered slice of key/value
	// pairs instead of a map, preserving duplicate keys.
	MapAsArray bool
}

// Cursor is a read position into a byte slice paired with decode Options.
// Offset is advanced monotonically by decode operations; it never exceeds
// len(Data) after a successful read.
type Cursor struct {
	Data    []byte
	Offset  int
	Options Options
}

// NewCursor creates a Cursor over data starting at offset 0.
func NewCursor(data []byte, opts Options) *Cursor {
	return &Cursor{Data: data, Options: opts}
}

// Remaining returns the unread suffix of the cursor's data, i.e. the slice
// every codec reads its next value from.
func (c *Cursor) Remaining() []byte {
	return c.Data[c.Offset:]
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.Data) - c.Offset
}

// require checks that n more bytes are available from the current offset,
// returning a wrapped ErrUnderflow (with offset/need context) if not. It
// never mutates the cursor: the caller's offset is the snapshot the
// streaming reader restores to on retry.
func (c *Cursor) require(n int) error {
	if c.Offset+n > len(c.Data) {
		return errs.NewOffsetError(c.Offset, c.Offset+n-len(c.Data), errs.ErrUnderflow)
	}

	return nil
}
