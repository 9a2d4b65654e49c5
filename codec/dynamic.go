package codec

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/typedesc"
	"github.com/lithiumdb/chwire/wire"
)

// DynamicValue is Dynamic's explicit form: a caller-supplied type
// descriptor paired with a value, bypassing type inference on encode.
type DynamicValue struct {
	Type  string
	Value any
}

var int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
var int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// inferType implements implicit Dynamic/JSON type inference for values
// that arrive without an explicit type: null -> Nothing; boolean -> Bool;
// string -> String; big integer -> Int128 if it fits, else Int256;
// floating point -> Int64
// when integral, else Float64; calendar value -> DateTime64(3);
// DateTime64Value -> DateTime64(p); array -> Array(inferType(first)),
// Array(Nothing) when empty. Anything else is UnsupportedInference.
func inferType(v any) (chtype.Node, error) {
	switch n := v.(type) {
	case nil:
		return chtype.Node{Name: "Nothing"}, nil
	case bool:
		return chtype.Node{Name: "Bool"}, nil
	case string:
		return chtype.Node{Name: "String"}, nil
	case *big.Int:
		if n.Cmp(int128Min) >= 0 && n.Cmp(int128Max) <= 0 {
			return chtype.Node{Name: "Int128"}, nil
		}

		return chtype.Node{Name: "Int256"}, nil
	case int:
		return chtype.Node{Name: "Int64"}, nil
	case int64:
		return chtype.Node{Name: "Int64"}, nil
	case float32:
		return inferFloat(float64(n))
	case float64:
		return inferFloat(n)
	case time.Time:
		return chtype.Node{Name: "DateTime64", Params: []string{"3"}}, nil
	case DateTime64Value:
		return chtype.Node{Name: "DateTime64", Params: []string{fmt.Sprint(n.Precision)}}, nil
	case []any:
		if len(n) == 0 {
			return chtype.Node{Name: "Array", Args: []chtype.Node{{Name: "Nothing"}}}, nil
		}
		first, err := inferType(n[0])
		if err != nil {
			return chtype.Node{}, err
		}

		return chtype.Node{Name: "Array", Args: []chtype.Node{first}}, nil
	default:
		return chtype.Node{}, fmt.Errorf("%w: %T", errs.ErrUnsupportedInference, v)
	}
}

func inferFloat(f float64) (chtype.Node, error) {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return chtype.Node{Name: "Int64"}, nil
	}

	return chtype.Node{Name: "Float64"}, nil
}

// dynamicCodec implements ClickHouse's Dynamic: a null value is a single
// zero byte (the Nothing type code); otherwise a binary type descriptor
// followed by the value in that type's codec.
type dynamicCodec struct {
	base
	r *Registry
}

func buildDynamic(r *Registry, n chtype.Node) (Codec, error) {
	return &dynamicCodec{base: base{n.Raw}, r: r}, nil
}

func (c *dynamicCodec) Encode(w *wire.Writer, v any) error {
	var node chtype.Node
	var value any

	switch dv := v.(type) {
	case DynamicValue:
		parsed, err := chtype.Parse(dv.Type)
		if err != nil {
			return err
		}
		node, value = parsed, dv.Value
	default:
		inferred, err := inferType(v)
		if err != nil {
			return err
		}
		node, value = inferred, v
	}

	if err := typedesc.Write(w, node); err != nil {
		return err
	}
	if node.Name == "Nothing" {
		return nil
	}

	elem, err := c.r.Get(node.String())
	if err != nil {
		return err
	}

	return elem.Encode(w, value)
}

func (c *dynamicCodec) Decode(cur *wire.Cursor) (any, error) {
	node, err := typedesc.Read(cur)
	if err != nil {
		return nil, err
	}
	if node.Name == "Nothing" {
		return nil, nil
	}

	elem, err := c.r.Get(node.String())
	if err != nil {
		return nil, err
	}
	val, err := elem.Decode(cur)
	if err != nil {
		return nil, err
	}

	return DynamicValue{Type: node.String(), Value: val}, nil
}
