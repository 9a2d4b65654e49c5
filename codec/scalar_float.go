package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

type float32Codec struct{ base }

func (c *float32Codec) Encode(w *wire.Writer, v any) error {
	switch n := v.(type) {
	case wire.Float32NaN:
		wire.WriteFloat32NaN(w, n)

		return nil
	case float32:
		wire.WriteFloat32(w, n)

		return nil
	case float64:
		wire.WriteFloat32(w, float32(n))

		return nil
	default:
		return fmt.Errorf("%w: expected float32 or Float32NaN, got %T", errs.ErrMalformedValue, v)
	}
}

func (c *float32Codec) Decode(cur *wire.Cursor) (any, error) {
	b, err := wire.ReadFloat32Bits(cur)
	if err != nil {
		return nil, err
	}
	v, nan, isNaN := wire.DecodeFloat32(b)
	if isNaN {
		return nan, nil
	}

	return v, nil
}

type float64Codec struct{ base }

func (c *float64Codec) Encode(w *wire.Writer, v any) error {
	switch n := v.(type) {
	case wire.Float64NaN:
		wire.WriteFloat64NaN(w, n)

		return nil
	case float64:
		wire.WriteFloat64(w, n)

		return nil
	case float32:
		wire.WriteFloat64(w, float64(n))

		return nil
	default:
		return fmt.Errorf("%w: expected float64 or Float64NaN, got %T", errs.ErrMalformedValue, v)
	}
}

func (c *float64Codec) Decode(cur *wire.Cursor) (any, error) {
	b, err := wire.ReadFloat64Bits(cur)
	if err != nil {
		return nil, err
	}
	v, nan, isNaN := wire.DecodeFloat64(b)
	if isNaN {
		return nan, nil
	}

	return v, nil
}
