package frame

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// NewS2Source wraps r as a Source that decompresses an S2-framed byte
// stream, yielding chunkSize-sized windows of the decompressed output.
func NewS2Source(r io.Reader, chunkSize int) Source {
	return FromReader(s2.NewReader(r), chunkSize)
}
