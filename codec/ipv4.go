package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// ipv4Codec implements ClickHouse's IPv4: a dotted-decimal string on the
// API side, a little-endian UInt32 on the wire whose big-endian byte
// order matches the dotted-decimal octet order (octet 1 is the most
// significant byte).
type ipv4Codec struct{ base }

// parseIPv4 hand-parses "a.b.c.d" into a big-endian uint32, validating
// each octet is 0..255 without delegating to net.ParseIP — the wire
// value is just those four octets read as a big-endian number.
func parseIPv4(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: IPv4 %q needs 4 octets", errs.ErrMalformedValue, s)
	}

	var v uint32
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: IPv4 octet %q out of range", errs.ErrMalformedValue, p)
		}
		v = v<<8 | uint32(n)
	}

	return v, nil
}

func formatIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (c *ipv4Codec) Encode(w *wire.Writer, v any) error {
	switch n := v.(type) {
	case string:
		u, err := parseIPv4(n)
		if err != nil {
			return err
		}
		wire.WriteUint32(w, u)

		return nil
	case uint32:
		wire.WriteUint32(w, n)

		return nil
	default:
		return fmt.Errorf("%w: expected IPv4 string or uint32, got %T", errs.ErrMalformedValue, v)
	}
}

func (c *ipv4Codec) Decode(cur *wire.Cursor) (any, error) {
	u, err := wire.ReadUint32(cur)
	if err != nil {
		return nil, err
	}

	return formatIPv4(u), nil
}
