package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/typedesc"
	"github.com/lithiumdb/chwire/wire"
)

// JSONField is one entry of a JsonCodec value: a dotted path plus the
// value stored at it. A plain Go map can't preserve field order or
// duplicate paths, both of which the wire format allows, so JSON values
// are an ordered slice rather than a map[string]any.
type JSONField struct {
	Path  string
	Value any
}

// jsonCodec implements ClickHouse's JSON: a LEB128 path count, then for
// each path (in insertion order) the path string, followed by either a
// single Nothing type code (value is null) or a binary type descriptor
// plus the value in that type's codec.
type jsonCodec struct {
	base
	r *Registry
}

func buildJSON(r *Registry, n chtype.Node) (Codec, error) {
	return &jsonCodec{base: base{n.Raw}, r: r}, nil
}

// buildObject builds the codec for ClickHouse's legacy Object('json')
// type, which this library treats as an alias for JSON — both carry an
// untyped, path-addressed bag of dynamically-typed values on the wire.
func buildObject(r *Registry, n chtype.Node) (Codec, error) {
	return buildJSON(r, n)
}

func (c *jsonCodec) Encode(w *wire.Writer, v any) error {
	fields, ok := v.([]JSONField)
	if !ok {
		return fmt.Errorf("%w: JSON expects []JSONField, got %T", errs.ErrMalformedValue, v)
	}

	wire.WriteUvarint(w, uint64(len(fields)))
	for _, f := range fields {
		wire.WriteString(w, f.Path)

		if f.Value == nil {
			if err := typedesc.Write(w, chtype.Node{Name: "Nothing"}); err != nil {
				return err
			}

			continue
		}

		node, err := inferType(f.Value)
		if err != nil {
			return err
		}
		if err := typedesc.Write(w, node); err != nil {
			return err
		}

		elem, err := c.r.Get(node.String())
		if err != nil {
			return err
		}
		if err := elem.Encode(w, f.Value); err != nil {
			return err
		}
	}

	return nil
}

func (c *jsonCodec) Decode(cur *wire.Cursor) (any, error) {
	n, err := wire.ReadUvarint(cur)
	if err != nil {
		return nil, err
	}

	fields := make([]JSONField, n)
	for i := range fields {
		path, err := wire.ReadString(cur)
		if err != nil {
			return nil, err
		}
		node, err := typedesc.Read(cur)
		if err != nil {
			return nil, err
		}
		if node.Name == "Nothing" {
			fields[i] = JSONField{Path: path, Value: nil}

			continue
		}

		elem, err := c.r.Get(node.String())
		if err != nil {
			return nil, err
		}
		val, err := elem.Decode(cur)
		if err != nil {
			return nil, err
		}
		fields[i] = JSONField{Path: path, Value: val}
	}

	return fields, nil
}
