package frame

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// NewLZ4Source wraps r as a Source that decompresses an LZ4-framed byte
// stream, yielding chunkSize-sized windows of the decompressed output.
func NewLZ4Source(r io.Reader, chunkSize int) Source {
	return FromReader(lz4.NewReader(r), chunkSize)
}
