package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// ipv6Codec implements ClickHouse's IPv6: the standard colon-hex textual
// form (with optional "::" zero-run shorthand) on the API side, 16 raw
// bytes in network byte order on the wire.
type ipv6Codec struct{ base }

// parseIPv6 hand-expands "::" and parses the 8 hex groups into 16 bytes,
// without delegating to net.ParseIP.
func parseIPv6(s string) ([16]byte, error) {
	var out [16]byte

	halves := strings.SplitN(s, "::", 2)
	var left, right []string
	switch len(halves) {
	case 1:
		left = strings.Split(halves[0], ":")
	case 2:
		if halves[0] != "" {
			left = strings.Split(halves[0], ":")
		}
		if halves[1] != "" {
			right = strings.Split(halves[1], ":")
		}
	}

	total := len(left) + len(right)
	if total > 8 || (len(halves) == 1 && total != 8) {
		return out, fmt.Errorf("%w: IPv6 %q has the wrong number of groups", errs.ErrMalformedValue, s)
	}

	groups := make([]string, 8)
	for i, g := range left {
		groups[i] = g
	}
	fillFrom := 8 - len(right)
	for i, g := range right {
		groups[fillFrom+i] = g
	}

	for i, g := range groups {
		if g == "" {
			continue
		}
		n, err := strconv.ParseUint(g, 16, 16)
		if err != nil {
			return out, fmt.Errorf("%w: IPv6 group %q is not valid hex", errs.ErrMalformedValue, g)
		}
		out[i*2] = byte(n >> 8)
		out[i*2+1] = byte(n)
	}

	return out, nil
}

// formatIPv6 renders 16 bytes as colon-hex text, collapsing the longest
// run of two-or-more zero groups into "::" per the canonical shorthand.
func formatIPv6(b [16]byte) string {
	groups := make([]uint16, 8)
	for i := range groups {
		groups[i] = uint16(b[i*2])<<8 | uint16(b[i*2+1])
	}

	bestStart, bestLen := -1, 0
	runStart, runLen := -1, 0
	for i, g := range groups {
		if g == 0 {
			if runStart < 0 {
				runStart = i
			}
			runLen++
			if runLen > bestLen {
				bestStart, bestLen = runStart, runLen
			}
		} else {
			runStart, runLen = -1, 0
		}
	}
	if bestLen < 2 {
		bestStart = -1
	}

	joinHex := func(gs []uint16) string {
		parts := make([]string, len(gs))
		for i, g := range gs {
			parts[i] = strconv.FormatUint(uint64(g), 16)
		}

		return strings.Join(parts, ":")
	}

	if bestStart < 0 {
		return joinHex(groups)
	}

	return joinHex(groups[:bestStart]) + "::" + joinHex(groups[bestStart+bestLen:])
}

func (c *ipv6Codec) Encode(w *wire.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: expected IPv6 string, got %T", errs.ErrMalformedValue, v)
	}
	b, err := parseIPv6(s)
	if err != nil {
		return err
	}
	wire.WriteRaw(w, b[:])

	return nil
}

func (c *ipv6Codec) Decode(cur *wire.Cursor) (any, error) {
	raw, err := wire.ReadRaw(cur, 16)
	if err != nil {
		return nil, err
	}
	var b [16]byte
	copy(b[:], raw)

	return formatIPv6(b), nil
}
