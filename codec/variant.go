package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// VariantValue is Variant's decoded form: which member of the type list
// was written, and its value. Encode requires the caller to supply this
// discriminator explicitly — unlike Dynamic/JSON, Variant never infers
// the member type from the Go value's shape.
type VariantValue struct {
	Index int
	Value any
}

const variantNullTag = 0xFF

// variantCodec implements ClickHouse's Variant(...): a one-byte
// discriminator (0xFF = null, otherwise an index into the declared type
// list) followed by that member's own encoding.
type variantCodec struct {
	base
	members []Codec
}

func buildVariant(r *Registry, n chtype.Node) (Codec, error) {
	members := make([]Codec, len(n.Args))
	for i, arg := range n.Args {
		c, err := r.Get(arg.String())
		if err != nil {
			return nil, err
		}
		members[i] = c
	}

	return &variantCodec{base: base{n.Raw}, members: members}, nil
}

func (c *variantCodec) Encode(w *wire.Writer, v any) error {
	if v == nil {
		wire.WriteUint8(w, variantNullTag)

		return nil
	}

	vv, ok := v.(VariantValue)
	if !ok {
		return fmt.Errorf("%w: Variant expects nil or VariantValue, got %T", errs.ErrMalformedValue, v)
	}
	if vv.Index < 0 || vv.Index >= len(c.members) {
		return fmt.Errorf("%w: Variant discriminator %d out of range [0, %d)", errs.ErrMalformedValue, vv.Index, len(c.members))
	}
	wire.WriteUint8(w, uint8(vv.Index))

	return c.members[vv.Index].Encode(w, vv.Value)
}

func (c *variantCodec) Decode(cur *wire.Cursor) (any, error) {
	tag, err := wire.ReadUint8(cur)
	if err != nil {
		return nil, err
	}
	if tag == variantNullTag {
		return nil, nil
	}
	if int(tag) >= len(c.members) {
		return nil, errs.NewTypeError("Variant", c.typeName, errs.ErrMalformedValue)
	}

	val, err := c.members[tag].Decode(cur)
	if err != nil {
		return nil, err
	}

	return VariantValue{Index: int(tag), Value: val}, nil
}
