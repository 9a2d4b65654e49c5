// Package stream implements the pull-based streaming decoder and
// encoder that drive the codec package across chunk boundaries: a
// single-consumer accumulator over a frame.Source, a retry-on-underflow
// decode loop, and batch-yielding row iteration.
package stream

import (
	"errors"
	"io"
	"iter"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/frame"
	"github.com/lithiumdb/chwire/wire"
)

// Row is one decoded row: one value per column, in declared column order.
type Row []any

// Reader is a single-consumer pull-based accumulator over a frame.Source.
// It is logically single-threaded: the only suspension point is
// pullMore, which blocks on the underlying Source.
//
// The internal buffer is never compacted or grown in place once a
// typed-array fast-path view (see codec/array.go) may have been handed
// out of it — every growth reallocates a new backing array and copies
// the unread tail plus new chunk into it, so an already-returned view
// never observes a later mutation.
type Reader struct {
	src       frame.Source
	buf       []byte
	offset    int
	opts      wire.Options
	exhausted bool
}

// NewReader creates a Reader pulling chunks from src.
func NewReader(src frame.Source, opts ...codec.Option) *Reader {
	return &Reader{src: src, opts: applyOpts(opts)}
}

func applyOpts(opts []codec.Option) wire.Options {
	var o wire.Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// getSlice returns the current unread contiguous view over the internal
// buffer.
func (r *Reader) getSlice() []byte {
	return r.buf[r.offset:]
}

// Len returns the number of unread bytes currently buffered.
func (r *Reader) Len() int {
	return len(r.buf) - r.offset
}

// advance moves the read offset forward after a synchronous decode
// consumed n bytes from getSlice().
func (r *Reader) advance(n int) {
	r.offset += n
}

// pullMore awaits the next chunk from the source and appends it to the
// internal buffer, reallocating (doubling, at least enough to hold the
// current unread tail plus the new chunk) when required. Returns io.EOF
// when the source is exhausted.
func (r *Reader) pullMore() error {
	if r.exhausted {
		return io.EOF
	}

	chunk, err := r.src.Next()
	if len(chunk) == 0 && err != nil {
		if errors.Is(err, io.EOF) {
			r.exhausted = true
		}

		return err
	}

	unread := r.Len()
	need := unread + len(chunk)
	capNeeded := cap(r.buf) - r.offset
	if capNeeded < need {
		// Old backing array is never reused across a reallocation: typed
		// views the Array fast path may have handed out still reference
		// it, so the only safe move is a fresh array plus a fresh copy of
		// the still-unread tail.
		newCap := max(need, cap(r.buf)*2)
		newBuf := make([]byte, unread, newCap)
		copy(newBuf, r.getSlice())
		newBuf = append(newBuf, chunk...)
		r.buf = newBuf
		r.offset = 0
	} else {
		r.buf = append(r.buf[:r.offset+unread], chunk...)
	}

	if err != nil && errors.Is(err, io.EOF) {
		r.exhausted = true
	}

	return nil
}

// ensure loops pullMore until at least n bytes are available or the
// source is exhausted.
func (r *Reader) ensure(n int) error {
	for r.Len() < n {
		if err := r.pullMore(); err != nil {
			return err
		}
	}

	return nil
}

// decodeRetrying runs fn against a fresh Cursor over the current unread
// slice, pulling more input and retrying on Underflow until fn succeeds,
// a non-Underflow error occurs, or the source is exhausted mid-value
// (reported as ErrUnexpectedEOF).
func (r *Reader) decodeRetrying(fn func(cur *wire.Cursor) (any, error)) (any, error) {
	for {
		cur := wire.NewCursor(r.getSlice(), r.opts)
		val, err := fn(cur)
		if err == nil {
			r.advance(cur.Offset)

			return val, nil
		}
		if !errs.IsUnderflow(err) {
			return nil, err
		}

		if perr := r.pullMore(); perr != nil {
			if errors.Is(perr, io.EOF) {
				return nil, errs.ErrUnexpectedEOF
			}

			return nil, perr
		}
	}
}

// ReadHeader decodes a RowBinaryWithNamesAndTypes header: a LEB128
// column count, that many column name strings, then that many column
// type strings.
func (r *Reader) ReadHeader() (names []string, types []string, err error) {
	count, err := r.decodeRetrying(func(cur *wire.Cursor) (any, error) { return wire.ReadUvarint(cur) })
	if err != nil {
		return nil, nil, err
	}
	n := int(count.(uint64))

	names = make([]string, n)
	for i := range names {
		v, err := r.decodeRetrying(func(cur *wire.Cursor) (any, error) { return wire.ReadString(cur) })
		if err != nil {
			return nil, nil, err
		}
		names[i] = v.(string)
	}

	types = make([]string, n)
	for i := range types {
		v, err := r.decodeRetrying(func(cur *wire.Cursor) (any, error) { return wire.ReadString(cur) })
		if err != nil {
			return nil, nil, err
		}
		types[i] = v.(string)
	}

	return names, types, nil
}

// Rows decodes rows of the given columns, yielding them in batches. Each
// batch is the contiguous run of rows decoded from one buffered slice
// before it was exhausted or a pull was needed — this lines up emitted
// batches with the source's natural chunk boundaries.
//
// On underflow mid-row, any rows already decoded into the current batch
// are yielded first; pulling more input then continues to finish the
// partial row. End-of-stream exactly at a row boundary ends iteration
// normally; end-of-stream mid-row yields ErrUnexpectedEOF.
func (r *Reader) Rows(columns []codec.Codec) iter.Seq2[[]Row, error] {
	return func(yield func([]Row, error) bool) {
		var batch []Row
		for {
			cur := wire.NewCursor(r.getSlice(), r.opts)
			row, err := decodeRow(cur, columns)
			if err != nil {
				if errs.IsUnderflow(err) {
					if len(batch) > 0 {
						if !yield(batch, nil) {
							return
						}
						batch = nil
					}

					if perr := r.pullMore(); perr != nil {
						if errors.Is(perr, io.EOF) {
							if r.Len() == 0 {
								return
							}
							yield(nil, errs.ErrUnexpectedEOF)

							return
						}
						yield(nil, perr)

						return
					}

					continue
				}

				yield(nil, err)

				return
			}

			r.advance(cur.Offset)
			batch = append(batch, row)

			if r.Len() == 0 {
				if !yield(batch, nil) {
					return
				}
				batch = nil
			}
		}
	}
}

func decodeRow(cur *wire.Cursor, columns []codec.Codec) (Row, error) {
	row := make(Row, len(columns))
	for i, c := range columns {
		v, err := c.Decode(cur)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}

	return row, nil
}
