package wire

import "github.com/lithiumdb/chwire/internal/pool"

// Writer is the growable output buffer every codec's encode side writes
// into. It is obtained from a pool so that encoding a batch of rows does
// not allocate a fresh buffer per row.
type Writer struct {
	buf *pool.Buffer
}

// NewWriter returns a Writer backed by a pooled buffer. Call Finish when
// done to return the buffer to the pool.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetEncodeBuffer()}
}

// Bytes returns the bytes written so far. The slice aliases the Writer's
// internal buffer and is only valid until the next write or Finish.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Reset truncates the writer back to empty without releasing its buffer.
func (w *Writer) Reset() { w.buf.Reset() }

// Finish returns the Writer's buffer to the pool. The Writer must not be
// used again afterward.
func (w *Writer) Finish() {
	if w.buf != nil {
		pool.PutEncodeBuffer(w.buf)
		w.buf = nil
	}
}
