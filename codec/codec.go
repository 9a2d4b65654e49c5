// Package codec dispatches a ClickHouse textual type descriptor to an
// encode/decode pair that reads and writes that type's RowBinary wire
// layout, and caches the result so repeated lookups of the same type
// share one codec instance for the life of the process.
package codec

import "github.com/lithiumdb/chwire/wire"

// Codec is the capability set every type's wire representation exposes:
// encode a Go value into a Writer, decode a value starting at a Cursor.
//
// A Codec is immutable and carries no per-call state, so one instance is
// safely shared by every concurrent caller that needs the same type —
// this is what makes registry memoization safe. Composite codecs
// (Nullable, Array, Tuple, Map, ...) hold their child Codec values
// directly as struct fields; the type tree has no back edges, so
// ownership is a simple tree, not a graph.
type Codec interface {
	// Encode writes v's wire representation to w. The shape v must have
	// is documented per concrete type in this package (see each codec's
	// doc comment for its accepted input shapes).
	Encode(w *wire.Writer, v any) error

	// Decode reads one value starting at c.Offset, advancing it past
	// the value on success. On failure the offset is not restored: a
	// composite codec may already have advanced it past the parts it
	// read, so a caller that retries starts again from its own saved
	// offset (stream.Reader builds a fresh Cursor for each attempt).
	Decode(c *wire.Cursor) (any, error)

	// TypeName returns the canonical textual type this codec was built
	// for, used in error messages.
	TypeName() string
}

// base holds the one field nearly every codec needs: its own canonical
// type string, for error reporting. Embedding it avoids repeating the
// same TypeName() method on every concrete codec type.
type base struct {
	typeName string
}

func (b base) TypeName() string { return b.typeName }
