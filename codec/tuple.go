package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// tupleCodec implements ClickHouse's Tuple(...): elements encoded in
// declared order, each with its own element codec. A named tuple
// (Tuple(a String, b Int64)) encodes/decodes map[string]any; a
// positional tuple (Tuple(String, Int64)) encodes/decodes []any.
type tupleCodec struct {
	base
	names []string // empty for a positional tuple
	elems []Codec
}

func buildTuple(r *Registry, n chtype.Node) (Codec, error) {
	elems := make([]Codec, len(n.Args))
	names := make([]string, len(n.Args))
	named := false
	for i, arg := range n.Args {
		c, err := r.Get(arg.String())
		if err != nil {
			return nil, err
		}
		elems[i] = c
		if arg.ElemName != "" {
			names[i] = arg.ElemName
			named = true
		}
	}
	if !named {
		names = nil
	}

	return &tupleCodec{base: base{n.Raw}, names: names, elems: elems}, nil
}

func (c *tupleCodec) Encode(w *wire.Writer, v any) error {
	if c.names != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: named tuple %s expects map[string]any, got %T", errs.ErrMalformedValue, c.typeName, v)
		}
		for i, name := range c.names {
			val, present := m[name]
			if !present {
				return fmt.Errorf("%w: named tuple %s missing field %q", errs.ErrMalformedValue, c.typeName, name)
			}
			if err := c.elems[i].Encode(w, val); err != nil {
				return err
			}
		}

		return nil
	}

	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%w: tuple %s expects []any, got %T", errs.ErrMalformedValue, c.typeName, v)
	}
	if len(items) != len(c.elems) {
		return fmt.Errorf("%w: tuple %s expects %d elements, got %d", errs.ErrMalformedValue, c.typeName, len(c.elems), len(items))
	}
	for i, item := range items {
		if err := c.elems[i].Encode(w, item); err != nil {
			return err
		}
	}

	return nil
}

func (c *tupleCodec) Decode(cur *wire.Cursor) (any, error) {
	if c.names != nil {
		m := make(map[string]any, len(c.elems))
		for i, name := range c.names {
			val, err := c.elems[i].Decode(cur)
			if err != nil {
				return nil, err
			}
			m[name] = val
		}

		return m, nil
	}

	out := make([]any, len(c.elems))
	for i, elem := range c.elems {
		val, err := elem.Decode(cur)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}

	return out, nil
}

// buildNested rewrites Nested(fields...) to Array(Tuple(fields...)),
// building the tuple/array pair directly rather than round-tripping
// through chtype.Parse on a synthesized string.
func buildNested(r *Registry, n chtype.Node) (Codec, error) {
	tupleNode := chtype.Node{Name: "Tuple", Args: n.Args, Raw: "Tuple(...)"}
	tuple, err := buildTuple(r, tupleNode)
	if err != nil {
		return nil, err
	}

	return &arrayCodec{base: base{n.Raw}, elem: tuple}, nil
}
