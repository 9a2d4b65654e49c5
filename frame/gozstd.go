//go:build nobuild

package frame

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewGozstdSource wraps r as a Source backed by valyala/gozstd's cgo zstd
// binding, an opt-in alternative to the pure-Go klauspost path
// NewZstdSource uses by default. Disabled by default (see the build tag
// above) so a default build never requires cgo.
func NewGozstdSource(r io.Reader, chunkSize int) Source {
	return FromReader(gozstd.NewReader(r), chunkSize)
}
