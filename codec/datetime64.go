package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// DateTime64Value is DateTime64's decoded form: a tick count plus the
// precision it was decoded under. Precision is a property of the column
// type, not the value, but the wrapper carries it along so ToTime doesn't
// need the codec. Ticks are a count of 10^(-precision) seconds since the
// Unix epoch.
type DateTime64Value struct {
	Ticks     int64
	Precision int
}

func tickPow(precision int) int64 {
	d := precision - 3
	if d < 0 {
		d = -d
	}

	pow := int64(1)
	for range d {
		pow *= 10
	}

	return pow
}

// ToTime converts to a native time.Time with millisecond resolution. For
// precision >= 3, Ticks are divided down to milliseconds (sub-millisecond
// ticks are truncated). For precision < 3, Ticks are multiplied up by a
// power of ten, which can overflow int64 for large tick counts; that
// overflow is reported explicitly as ErrRangeError (see DESIGN.md)
// rather than silently wrapping.
func (d DateTime64Value) ToTime() (time.Time, error) {
	pow := tickPow(d.Precision)

	var ms int64
	if d.Precision >= 3 {
		ms = d.Ticks / pow
	} else {
		if d.Ticks > math.MaxInt64/pow || d.Ticks < math.MinInt64/pow {
			return time.Time{}, errs.ErrRangeError
		}
		ms = d.Ticks * pow
	}

	return time.UnixMilli(ms).UTC(), nil
}

// dateTime64Codec implements ClickHouse's DateTime64(p[, tz]): a signed
// 64-bit tick count, where a tick is 10^(-p) seconds since the epoch.
type dateTime64Codec struct {
	base
	precision int
}

func buildDateTime64(n chtype.Node) (Codec, error) {
	if len(n.Params) < 1 {
		return nil, errs.NewTypeError("DateTime64", n.Raw, errs.ErrUnsupportedType)
	}
	p, err := chtype.ParseUint(n.Params[0])
	if err != nil {
		return nil, fmt.Errorf("%w: DateTime64 precision %q: %w", errs.ErrUnsupportedType, n.Params[0], err)
	}

	return &dateTime64Codec{base: base{n.Raw}, precision: p}, nil
}

func (c *dateTime64Codec) Encode(w *wire.Writer, v any) error {
	var ms int64
	switch n := v.(type) {
	case DateTime64Value:
		wire.WriteInt64(w, n.Ticks)

		return nil
	case time.Time:
		ms = n.UTC().UnixMilli()
	case int64:
		ms = n
	case int:
		ms = int64(n)
	default:
		return fmt.Errorf("%w: DateTime64 expects time.Time, DateTime64Value, or millisecond int64, got %T", errs.ErrMalformedValue, v)
	}

	pow := tickPow(c.precision)
	var ticks int64
	if c.precision >= 3 {
		if pow != 0 && (ms > math.MaxInt64/pow || ms < math.MinInt64/pow) {
			return errs.ErrRangeError
		}
		ticks = ms * pow
	} else {
		ticks = ms / pow
	}
	wire.WriteInt64(w, ticks)

	return nil
}

func (c *dateTime64Codec) Decode(cur *wire.Cursor) (any, error) {
	ticks, err := wire.ReadInt64(cur)
	if err != nil {
		return nil, err
	}

	return DateTime64Value{Ticks: ticks, Precision: c.precision}, nil
}
