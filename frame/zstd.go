package frame

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewZstdSource wraps r as a Source that decompresses a zstd-framed
// byte stream, yielding chunkSize-sized windows of the decompressed
// output to the streaming reader's pullMore.
func NewZstdSource(r io.Reader, chunkSize int) (Source, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("frame: open zstd source: %w", err)
	}

	return FromReader(dec.IOReadCloser(), chunkSize), nil
}
