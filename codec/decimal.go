package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// decimalWidthForPrecision maps a bare Decimal's precision range to its
// wire width in bytes. Decimal32/64/128/256 take their width from the
// suffix instead (see buildDecimal).
func decimalWidthForPrecision(precision int) int {
	switch {
	case precision <= 9:
		return 4
	case precision <= 18:
		return 8
	case precision <= 38:
		return 16
	default:
		return 32
	}
}

// decimalCodec implements ClickHouse's Decimal/Decimal32/64/128/256: a
// scaled two's-complement integer on the wire (width 4/8/16/32 bytes
// chosen from precision), a decimal string ("-123.4500") on the API
// side. math/big parses and formats the string form; the wire layout
// (byte width, limb split, sign) is the same hand-written path
// scalar_bigint.go uses for UInt128/256, justified there.
type decimalCodec struct {
	base
	width int
	scale int
}

func buildDecimal(n chtype.Node) (Codec, error) {
	var width, scale int

	switch n.Name {
	case "Decimal":
		if len(n.Params) != 2 {
			return nil, errs.NewTypeError("Decimal", n.Raw, errs.ErrUnsupportedType)
		}
		precision, err := chtype.ParseUint(n.Params[0])
		if err != nil {
			return nil, fmt.Errorf("%w: Decimal precision %q: %w", errs.ErrUnsupportedType, n.Params[0], err)
		}
		s, err := chtype.ParseUint(n.Params[1])
		if err != nil {
			return nil, fmt.Errorf("%w: Decimal scale %q: %w", errs.ErrUnsupportedType, n.Params[1], err)
		}
		width, scale = decimalWidthForPrecision(precision), s
	case "Decimal32", "Decimal64", "Decimal128", "Decimal256":
		if len(n.Params) != 1 {
			return nil, errs.NewTypeError(n.Name, n.Raw, errs.ErrUnsupportedType)
		}
		s, err := chtype.ParseUint(n.Params[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s scale %q: %w", errs.ErrUnsupportedType, n.Name, n.Params[0], err)
		}
		scale = s
		switch n.Name {
		case "Decimal32":
			width = 4
		case "Decimal64":
			width = 8
		case "Decimal128":
			width = 16
		case "Decimal256":
			width = 32
		}
	default:
		return nil, errs.NewTypeError("Decimal", n.Raw, errs.ErrUnsupportedType)
	}

	return &decimalCodec{base: base{n.Raw}, width: width, scale: scale}, nil
}

// parseDecimalString parses an optionally-signed decimal string into a
// scaled big.Int: integer part and fractional part concatenated, the
// fractional part padded with trailing zeros or truncated to exactly
// scale digits.
func parseDecimalString(s string, scale int) (*big.Int, error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > scale {
		fracPart = fracPart[:scale]
	} else {
		fracPart += strings.Repeat("0", scale-len(fracPart))
	}
	_ = hasDot

	digits := intPart + fracPart
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: decimal %q is not a valid number", errs.ErrMalformedValue, orig)
		}
	}

	b, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: decimal %q is not a valid number", errs.ErrMalformedValue, orig)
	}
	if neg {
		b.Neg(b)
	}

	return b, nil
}

// formatDecimalString is the inverse of parseDecimalString: render a
// scaled big.Int back to "sign intDigits.fracDigits", omitting the dot
// entirely when scale is 0.
func formatDecimalString(b *big.Int, scale int) string {
	neg := b.Sign() < 0
	abs := new(big.Int).Abs(b).String()
	if len(abs) <= scale {
		abs = strings.Repeat("0", scale-len(abs)+1) + abs
	}

	sign := ""
	if neg {
		sign = "-"
	}
	if scale == 0 {
		return sign + abs
	}

	split := len(abs) - scale

	return sign + abs[:split] + "." + abs[split:]
}

func (c *decimalCodec) Encode(w *wire.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: Decimal expects a decimal string, got %T", errs.ErrMalformedValue, v)
	}
	b, err := parseDecimalString(s, c.scale)
	if err != nil {
		return err
	}

	switch c.width {
	case 4:
		wire.WriteInt32(w, int32(b.Int64()))
	case 8:
		wire.WriteInt64(w, b.Int64())
	case 16:
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		norm := b
		if b.Sign() < 0 {
			norm = new(big.Int).Add(b, mod)
		}
		lo, hi := limbs128(norm)
		wire.WriteInt128(w, wire.Int128{Lo: lo, Hi: int64(hi)})
	case 32:
		mod := new(big.Int).Lsh(big.NewInt(1), 256)
		norm := b
		if b.Sign() < 0 {
			norm = new(big.Int).Add(b, mod)
		}
		w0, w1, w2, w3 := limbs256(norm)
		wire.WriteInt256(w, wire.Int256{W0: w0, W1: w1, W2: w2, W3: int64(w3)})
	}

	return nil
}

func (c *decimalCodec) Decode(cur *wire.Cursor) (any, error) {
	var b *big.Int

	switch c.width {
	case 4:
		n, err := wire.ReadInt32(cur)
		if err != nil {
			return nil, err
		}
		b = big.NewInt(int64(n))
	case 8:
		n, err := wire.ReadInt64(cur)
		if err != nil {
			return nil, err
		}
		b = big.NewInt(n)
	case 16:
		n, err := wire.ReadInt128(cur)
		if err != nil {
			return nil, err
		}
		b, _ = toBig(n)
	case 32:
		n, err := wire.ReadInt256(cur)
		if err != nil {
			return nil, err
		}
		b, _ = toBig(n)
	}

	return formatDecimalString(b, c.scale), nil
}
