// Package frame provides the chunk sources the streaming reader pulls
// from: a plain io.Reader adapter, and decompressing variants that wrap
// the payload-compression libraries as a framing boundary. Compression
// algorithms themselves are out of scope here; what lives in this
// package is only the decoder-as-chunk-source role that feeds
// stream.Reader.pullMore.
package frame

import "io"

// Source yields successive byte chunks to a stream.Reader. Next returns
// io.EOF (wrapped or bare) once exhausted; any other error is fatal.
// Each returned slice is the source's own buffer and is safe for the
// caller to retain — the source does not reuse it across calls.
type Source interface {
	Next() ([]byte, error)
}

// readerSource adapts a plain io.Reader into a Source, reading up to
// chunkSize bytes per Next call.
type readerSource struct {
	r         io.Reader
	chunkSize int
}

// FromReader wraps r as a Source that reads chunkSize-byte chunks.
func FromReader(r io.Reader, chunkSize int) Source {
	return &readerSource{r: r, chunkSize: chunkSize}
}

func (s *readerSource) Next() ([]byte, error) {
	buf := make([]byte, s.chunkSize)
	n, err := s.r.Read(buf)
	if n > 0 {
		// io.Reader may return n>0 and err==io.EOF in the same call; hand
		// back the bytes now and let the next Next() report EOF.
		return buf[:n], nil
	}

	return nil, err
}
