package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// stringCodec implements ClickHouse's String: a LEB128 length followed by
// raw bytes. Encode accepts either a UTF-8 string or a raw []byte.
type stringCodec struct{ base }

func (c *stringCodec) Encode(w *wire.Writer, v any) error {
	switch s := v.(type) {
	case string:
		wire.WriteString(w, s)

		return nil
	case []byte:
		wire.WriteBytes(w, s)

		return nil
	default:
		return fmt.Errorf("%w: expected string or []byte, got %T", errs.ErrMalformedValue, v)
	}
}

func (c *stringCodec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadString(cur) }

// nothingCodec implements ClickHouse's Nothing: a zero-width type used as
// the element type of empty arrays and as the Dynamic/JSON encoding of
// null. It writes and reads no bytes at all.
type nothingCodec struct{ base }

func (c *nothingCodec) Encode(*wire.Writer, any) error { return nil }

func (c *nothingCodec) Decode(*wire.Cursor) (any, error) { return nil, nil }
