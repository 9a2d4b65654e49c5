package codec

import "github.com/lithiumdb/chwire/wire"

// Option configures a decode Cursor using the functional-options pattern,
// applied to wire.Options, chwire's one decode-time knob.
type Option func(*wire.Options)

// WithMapAsArray makes MapCodec decode to an ordered []KV slice instead
// of a map[any]any, preserving duplicate keys and entry order.
func WithMapAsArray(enabled bool) Option {
	return func(o *wire.Options) { o.MapAsArray = enabled }
}

// NewCursor builds a Cursor over data with the given Options applied in
// order, and is the entry point callers use instead of constructing
// wire.Options by hand.
func NewCursor(data []byte, opts ...Option) *wire.Cursor {
	var o wire.Options
	for _, opt := range opts {
		opt(&o)
	}

	return wire.NewCursor(data, o)
}
