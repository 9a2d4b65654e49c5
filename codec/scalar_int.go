package codec

import (
	"fmt"
	"math"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// Fixed-width integer scalars accept any Go integer kind, or a float32/
// float64 with no fractional part (the shape Dynamic/JSON inference maps
// to Int64), on encode and truncate it bitwise to the target width (no
// range validation on encode — see DESIGN.md). Decode always returns the
// narrowest Go type that exactly represents the wire width (int8,
// uint16, ...).

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		if f := float64(n); f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f), nil
		}
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), nil
		}
	}

	return 0, fmt.Errorf("%w: expected integer, got %T", errs.ErrMalformedValue, v)
}

type uint8Codec struct{ base }

func (c *uint8Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteUint8(w, uint8(n))

	return nil
}

func (c *uint8Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadUint8(cur) }

type int8Codec struct{ base }

func (c *int8Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteInt8(w, int8(n))

	return nil
}

func (c *int8Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadInt8(cur) }

type boolCodec struct{ base }

func (c *boolCodec) Encode(w *wire.Writer, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: expected bool, got %T", errs.ErrMalformedValue, v)
	}
	if b {
		wire.WriteUint8(w, 1)
	} else {
		wire.WriteUint8(w, 0)
	}

	return nil
}

func (c *boolCodec) Decode(cur *wire.Cursor) (any, error) {
	n, err := wire.ReadUint8(cur)
	if err != nil {
		return nil, err
	}

	return n != 0, nil
}

type uint16Codec struct{ base }

func (c *uint16Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteUint16(w, uint16(n))

	return nil
}

func (c *uint16Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadUint16(cur) }

type int16Codec struct{ base }

func (c *int16Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteInt16(w, int16(n))

	return nil
}

func (c *int16Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadInt16(cur) }

type uint32Codec struct{ base }

func (c *uint32Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteUint32(w, uint32(n))

	return nil
}

func (c *uint32Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadUint32(cur) }

type int32Codec struct{ base }

func (c *int32Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteInt32(w, int32(n))

	return nil
}

func (c *int32Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadInt32(cur) }

type uint64Codec struct{ base }

func (c *uint64Codec) Encode(w *wire.Writer, v any) error {
	switch n := v.(type) {
	case uint64:
		wire.WriteUint64(w, n)

		return nil
	default:
		n64, err := toInt64(v)
		if err != nil {
			return err
		}
		wire.WriteUint64(w, uint64(n64))

		return nil
	}
}

func (c *uint64Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadUint64(cur) }

type int64Codec struct{ base }

func (c *int64Codec) Encode(w *wire.Writer, v any) error {
	n, err := toInt64(v)
	if err != nil {
		return err
	}
	wire.WriteInt64(w, n)

	return nil
}

func (c *int64Codec) Decode(cur *wire.Cursor) (any, error) { return wire.ReadInt64(cur) }
