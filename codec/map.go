package codec

import (
	"fmt"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// KV is one decoded Map entry when the cursor's MapAsArray option is set,
// preserving entry order and duplicate keys that a Go map could not.
type KV struct {
	Key   any
	Value any
}

// mapCodec implements ClickHouse's Map(K, V): a LEB128 entry count
// followed by that many (key, value) pairs in order. Decode produces a
// map[any]any unless the cursor's MapAsArray option is set, in which case
// it produces an ordered []KV that preserves duplicate keys — ClickHouse
// itself permits duplicate map keys, but Go's map type cannot represent
// them, so MapAsArray is the only way to observe them round-trip.
type mapCodec struct {
	base
	key Codec
	val Codec
}

func buildMap(r *Registry, n chtype.Node) (Codec, error) {
	if len(n.Args) != 2 {
		return nil, errs.NewTypeError("Map", n.Raw, errs.ErrUnsupportedType)
	}
	key, err := r.Get(n.Args[0].String())
	if err != nil {
		return nil, err
	}
	val, err := r.Get(n.Args[1].String())
	if err != nil {
		return nil, err
	}

	return &mapCodec{base: base{n.Raw}, key: key, val: val}, nil
}

func (c *mapCodec) Encode(w *wire.Writer, v any) error {
	switch m := v.(type) {
	case []KV:
		wire.WriteUvarint(w, uint64(len(m)))
		for _, kv := range m {
			if err := c.key.Encode(w, kv.Key); err != nil {
				return err
			}
			if err := c.val.Encode(w, kv.Value); err != nil {
				return err
			}
		}

		return nil
	case map[any]any:
		wire.WriteUvarint(w, uint64(len(m)))
		for k, val := range m {
			if err := c.key.Encode(w, k); err != nil {
				return err
			}
			if err := c.val.Encode(w, val); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: map %s expects []KV or map[any]any, got %T", errs.ErrMalformedValue, c.typeName, v)
	}
}

func (c *mapCodec) Decode(cur *wire.Cursor) (any, error) {
	n, err := wire.ReadUvarint(cur)
	if err != nil {
		return nil, err
	}
	count := int(n)

	if cur.Options.MapAsArray {
		out := make([]KV, count)
		for i := range count {
			k, err := c.key.Decode(cur)
			if err != nil {
				return nil, err
			}
			val, err := c.val.Decode(cur)
			if err != nil {
				return nil, err
			}
			out[i] = KV{Key: k, Value: val}
		}

		return out, nil
	}

	out := make(map[any]any, count)
	for range count {
		k, err := c.key.Decode(cur)
		if err != nil {
			return nil, err
		}
		val, err := c.val.Decode(cur)
		if err != nil {
			return nil, err
		}
		// Duplicate keys: last write wins (see DESIGN.md).
		out[k] = val
	}

	return out, nil
}
