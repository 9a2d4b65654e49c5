package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// fixedStringCodec implements ClickHouse's FixedString(N): exactly N raw
// bytes, zero-padded on encode if the input is shorter, truncated if
// longer. Decode always returns N raw bytes, not UTF-8-decoded — the
// caller decides whether and how to interpret them as text.
type fixedStringCodec struct {
	base
	n int
}

func buildFixedString(n chtype.Node) (Codec, error) {
	if len(n.Params) != 1 {
		return nil, errs.NewTypeError("FixedString", n.Raw, errs.ErrUnsupportedType)
	}
	size, err := chtype.ParseUint(n.Params[0])
	if err != nil {
		return nil, fmt.Errorf("%w: FixedString length %q: %w", errs.ErrUnsupportedType, n.Params[0], err)
	}

	return &fixedStringCodec{base: base{n.Raw}, n: size}, nil
}

func (c *fixedStringCodec) Encode(w *wire.Writer, v any) error {
	var body []byte
	switch s := v.(type) {
	case string:
		body = []byte(s)
	case []byte:
		body = s
	default:
		return fmt.Errorf("%w: FixedString(%d) expects string or []byte, got %T", errs.ErrMalformedValue, c.n, v)
	}

	buf := make([]byte, c.n)
	copy(buf, body) // zero-pads if short, truncates (via copy's min-length) if long

	wire.WriteRaw(w, buf)

	return nil
}

func (c *fixedStringCodec) Decode(cur *wire.Cursor) (any, error) {
	raw, err := wire.ReadRaw(cur, c.n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, c.n)
	copy(out, raw)

	return out, nil
}
