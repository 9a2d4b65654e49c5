package stream

import (
	"iter"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
)

// DefaultSafetyMargin is subtracted from an Encoder's chunk budget to get
// the yield threshold. The check runs after each whole row is buffered,
// so a chunk stays within the budget only while no row is larger than
// the margin; a larger row can push a chunk past the budget.
const DefaultSafetyMargin = 4096

// Encoder buffers encoded rows and yields a byte chunk once the buffer
// reaches budget-safetyMargin bytes, resetting to empty afterward. It
// accepts both a synchronous row source (an iter.Seq[Row], which incurs
// no per-row suspension since range-over-func is a plain call) and an
// asynchronous one (a channel, adapted to iter.Seq by the caller); the
// synchronous path never suspends per row because iter.Seq iteration is
// ordinary Go control flow, not a goroutine handoff.
type Encoder struct {
	w            *wire.Writer
	budget       int
	safetyMargin int
}

// NewEncoder creates an Encoder that yields a chunk once its buffer
// reaches budget-safetyMargin bytes.
func NewEncoder(budget, safetyMargin int) *Encoder {
	return &Encoder{w: wire.NewWriter(), budget: budget, safetyMargin: safetyMargin}
}

// WriteHeader encodes a RowBinaryWithNamesAndTypes header (column count,
// names, types) into the Encoder's buffer. Call it once, before the
// first EncodeRows, to emit a header; omit it for bare RowBinary.
func (e *Encoder) WriteHeader(names, types []string) error {
	wire.WriteUvarint(e.w, uint64(len(names)))
	for _, n := range names {
		wire.WriteString(e.w, n)
	}
	for _, t := range types {
		wire.WriteString(e.w, t)
	}

	return nil
}

// threshold is the buffered-byte count past which EncodeRows yields.
func (e *Encoder) threshold() int {
	t := e.budget - e.safetyMargin
	if t < 0 {
		t = 0
	}

	return t
}

// EncodeRows encodes each row from rows against columns, yielding a
// chunk of accumulated bytes whenever the buffer crosses the
// budget-safetyMargin threshold, and a final chunk (if non-empty) after
// the source is exhausted.
func (e *Encoder) EncodeRows(columns []codec.Codec, rows iter.Seq[Row]) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		threshold := e.threshold()

		for row := range rows {
			for i, c := range row {
				if err := columns[i].Encode(e.w, c); err != nil {
					yield(nil, err)

					return
				}
			}

			if e.w.Len() >= threshold {
				chunk := append([]byte(nil), e.w.Bytes()...)
				e.w.Reset()
				if !yield(chunk, nil) {
					return
				}
			}
		}

		if e.w.Len() > 0 {
			chunk := append([]byte(nil), e.w.Bytes()...)
			e.w.Reset()
			yield(chunk, nil)
		}
	}
}

// Finish returns the Encoder's internal buffer to the pool. Call it once
// encoding is complete.
func (e *Encoder) Finish() {
	e.w.Finish()
}
