// Package pool provides pooled, growable byte buffers shared by the wire
// encoder and the streaming frame reader, so that encoding a row of values
// or accumulating a chunk of wire bytes does not allocate on every call.
package pool

import "sync"

// Buffer tiers. Encode sessions are typically a handful of rows at a time
// (RowBinary values are small), while the streaming reader accumulates
// whole network chunks, which run larger — hence two distinct pools with
// different default and ceiling sizes rather than one pool sized for the
// worst case.
const (
	// EncodeBufferDefaultSize is the initial capacity handed out for a new
	// encode-session buffer (see Writer in the wire package).
	EncodeBufferDefaultSize = 4 * 1024 // 4KiB
	// EncodeBufferMaxThreshold discards oversized encode buffers instead of
	// returning them to the pool, to avoid pinning megabytes of memory
	// after one unusually large row.
	EncodeBufferMaxThreshold = 256 * 1024 // 256KiB

	// FrameBufferDefaultSize is the initial capacity for a streaming
	// reader's accumulator buffer.
	FrameBufferDefaultSize = 64 * 1024 // 64KiB
	// FrameBufferMaxThreshold discards oversized frame buffers.
	FrameBufferMaxThreshold = 4 * 1024 * 1024 // 4MiB
)

// Buffer is a contiguous, growable byte region with a current write
// offset. It doubles (approximately) in capacity on demand and preserves
// existing bytes across reallocation, matching the "growable buffer" data
// model.
//
// Buffer is not safe for concurrent use; each encode session or streaming
// reader owns exactly one.
type Buffer struct {
	B []byte
}

// New creates a Buffer with the given initial capacity.
func New(initialCap int) *Buffer {
	return &Buffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the written portion of the buffer. The returned slice
// aliases the buffer's backing array and is only valid until the next
// growing operation.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.B) }

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int { return cap(b.B) }

// Reset truncates the buffer to zero length without releasing its backing
// array, so the next session reuses the same allocation.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Append writes data to the end of the buffer, growing it if needed.
func (b *Buffer) Append(data []byte) { b.B = append(b.B, data...) }

// AppendByte writes a single byte to the end of the buffer, growing it if needed.
func (b *Buffer) AppendByte(c byte) { b.B = append(b.B, c) }

// Slice returns the sub-slice [start:end) of the buffer's backing array.
// Unlike Bytes, start/end may range up to Cap, letting a caller write
// directly into reserved-but-unwritten capacity (see Grow + SetLen).
func (b *Buffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(b.B) {
		panic("pool: Slice: invalid indices")
	}

	return b.B[start:end]
}

// SetLen sets the buffer's logical length to n, which must not exceed
// capacity. Used after writing directly into a Slice obtained from
// reserved capacity.
func (b *Buffer) SetLen(n int) {
	if n < 0 || n > cap(b.B) {
		panic("pool: SetLen: invalid length")
	}

	b.B = b.B[:n]
}

// Extend grows the logical length by n without writing anything, reusing
// spare capacity if there is enough; it reports false (and leaves the
// buffer unchanged) if there is not.
func (b *Buffer) Extend(n int) bool {
	cur := len(b.B)
	if cap(b.B)-cur < n {
		return false
	}
	b.B = b.B[:cur+n]

	return true
}

// ExtendOrGrow extends the logical length by n, growing the backing array
// first if the spare capacity is insufficient.
func (b *Buffer) ExtendOrGrow(n int) {
	if b.Extend(n) {
		return
	}
	start := len(b.B)
	b.Grow(n)
	b.B = b.B[:start+n]
}

// Grow ensures at least extra more bytes of spare capacity are available
// without reallocating on the next write. When it must reallocate, the
// new backing array is NEVER the old one with room appended in place: a
// prior call to Slice may have handed out a view over the old array, and
// that view must keep reading what it was given even after Grow runs.
func (b *Buffer) Grow(extra int) {
	if cap(b.B)-len(b.B) >= extra {
		return
	}

	growBy := cap(b.B)
	if growBy < EncodeBufferDefaultSize {
		growBy = EncodeBufferDefaultSize
	}
	if growBy < extra {
		growBy = extra
	}

	next := make([]byte, len(b.B), len(b.B)+growBy)
	copy(next, b.B)
	b.B = next
}

// Pool is a sync.Pool of *Buffer with a ceiling above which buffers are
// discarded rather than retained, so one oversized session cannot pin
// memory for the lifetime of the process.
type Pool struct {
	pool      sync.Pool
	ceiling   int
	defaultSz int
}

// NewPool creates a Pool whose buffers start at defaultSize and are
// discarded, rather than pooled, once they grow past ceiling.
func NewPool(defaultSize, ceiling int) *Pool {
	p := &Pool{ceiling: ceiling, defaultSz: defaultSize}
	p.pool.New = func() any { return New(defaultSize) }

	return p
}

// Get retrieves a Buffer from the pool, allocating one if the pool is empty.
func (p *Pool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)

	return buf
}

// Put resets and returns a Buffer to the pool, or drops it if it has grown
// past the pool's ceiling.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	if p.ceiling > 0 && cap(b.B) > p.ceiling {
		return
	}

	b.Reset()
	p.pool.Put(b)
}

var (
	encodePool = NewPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)
	framePool  = NewPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
)

// GetEncodeBuffer retrieves a Buffer sized for one encode session.
func GetEncodeBuffer() *Buffer { return encodePool.Get() }

// PutEncodeBuffer returns a Buffer obtained from GetEncodeBuffer.
func PutEncodeBuffer(b *Buffer) { encodePool.Put(b) }

// GetFrameBuffer retrieves a Buffer sized for the streaming reader's chunk accumulator.
func GetFrameBuffer() *Buffer { return framePool.Get() }

// PutFrameBuffer returns a Buffer obtained from GetFrameBuffer.
func PutFrameBuffer(b *Buffer) { framePool.Put(b) }
