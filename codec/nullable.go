package codec

import (
	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/wire"
)

// nullableCodec implements ClickHouse's Nullable(T): a one-byte prefix
// (1 = null, 0 = present) followed by the inner value's own encoding
// when present.
type nullableCodec struct {
	base
	inner Codec
}

func buildNullable(r *Registry, n chtype.Node) (Codec, error) {
	inner, err := buildChild(r, n)
	if err != nil {
		return nil, err
	}

	return &nullableCodec{base: base{n.Raw}, inner: inner}, nil
}

func (c *nullableCodec) Encode(w *wire.Writer, v any) error {
	if v == nil {
		wire.WriteUint8(w, 1)

		return nil
	}
	wire.WriteUint8(w, 0)

	return c.inner.Encode(w, v)
}

func (c *nullableCodec) Decode(cur *wire.Cursor) (any, error) {
	flag, err := wire.ReadUint8(cur)
	if err != nil {
		return nil, err
	}
	if flag != 0 {
		return nil, nil
	}

	return c.inner.Decode(cur)
}
