package codec

import (
	"fmt"
	"time"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

const secondsPerDay = 86400

func toEpochDays(v any) (int64, error) {
	switch n := v.(type) {
	case time.Time:
		return n.UTC().Unix() / secondsPerDay, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint16:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected time.Time or day count, got %T", errs.ErrMalformedValue, v)
	}
}

func toEpochSeconds(v any) (int64, error) {
	switch n := v.(type) {
	case time.Time:
		return n.UTC().Unix(), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected time.Time or unix seconds, got %T", errs.ErrMalformedValue, v)
	}
}

// dateCodec implements ClickHouse's Date: an unsigned 16-bit count of
// days since the Unix epoch (valid range 1970-01-01..2149-06-06).
type dateCodec struct{ base }

func (c *dateCodec) Encode(w *wire.Writer, v any) error {
	days, err := toEpochDays(v)
	if err != nil {
		return err
	}
	wire.WriteUint16(w, uint16(days))

	return nil
}

func (c *dateCodec) Decode(cur *wire.Cursor) (any, error) {
	days, err := wire.ReadUint16(cur)
	if err != nil {
		return nil, err
	}

	return time.Unix(int64(days)*secondsPerDay, 0).UTC(), nil
}

// date32Codec implements ClickHouse's Date32: a signed 32-bit count of
// days since the Unix epoch, extending Date's range to dates before 1970.
type date32Codec struct{ base }

func (c *date32Codec) Encode(w *wire.Writer, v any) error {
	days, err := toEpochDays(v)
	if err != nil {
		return err
	}
	wire.WriteInt32(w, int32(days))

	return nil
}

func (c *date32Codec) Decode(cur *wire.Cursor) (any, error) {
	days, err := wire.ReadInt32(cur)
	if err != nil {
		return nil, err
	}

	return time.Unix(int64(days)*secondsPerDay, 0).UTC(), nil
}

// dateTimeCodec implements ClickHouse's DateTime: an unsigned 32-bit
// count of seconds since the Unix epoch.
type dateTimeCodec struct{ base }

func (c *dateTimeCodec) Encode(w *wire.Writer, v any) error {
	secs, err := toEpochSeconds(v)
	if err != nil {
		return err
	}
	wire.WriteUint32(w, uint32(secs))

	return nil
}

func (c *dateTimeCodec) Decode(cur *wire.Cursor) (any, error) {
	secs, err := wire.ReadUint32(cur)
	if err != nil {
		return nil, err
	}

	return time.Unix(int64(secs), 0).UTC(), nil
}
