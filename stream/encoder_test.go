package stream_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/stream"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqOf(rows ...stream.Row) func(yield func(stream.Row) bool) {
	return func(yield func(stream.Row) bool) {
		for _, r := range rows {
			if !yield(r) {
				return
			}
		}
	}
}

func TestEncoderWriteHeaderMatchesReaderFormat(t *testing.T) {
	enc := stream.NewEncoder(1<<20, stream.DefaultSafetyMargin)
	require.NoError(t, enc.WriteHeader([]string{"id"}, []string{"UInt8"}))

	var chunks [][]byte
	for chunk, err := range enc.EncodeRows(nil, seqOf()) {
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	enc.Finish()

	require.Len(t, chunks, 1)
	cur := wire.NewCursor(chunks[0], wire.Options{})
	n, err := wire.ReadUvarint(cur)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
	name, err := wire.ReadString(cur)
	require.NoError(t, err)
	assert.Equal(t, "id", name)
	ty, err := wire.ReadString(cur)
	require.NoError(t, err)
	assert.Equal(t, "UInt8", ty)
}

func TestEncoderYieldsSingleFinalChunkUnderBudget(t *testing.T) {
	columns := getColumns(t, "UInt8", "String")
	rows := []stream.Row{{uint8(1), "a"}, {uint8(2), "b"}}

	enc := stream.NewEncoder(1<<20, stream.DefaultSafetyMargin)
	var chunks [][]byte
	for chunk, err := range enc.EncodeRows(columns, seqOf(rows...)) {
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	enc.Finish()

	require.Len(t, chunks, 1)

	var all []byte
	for _, c := range chunks {
		all = append(all, c...)
	}
	r := &sliceSource{chunks: [][]byte{all}}
	reader := stream.NewReader(r)
	var got []stream.Row
	for batch, err := range reader.Rows(columns) {
		require.NoError(t, err)
		got = append(got, batch...)
	}
	assert.Equal(t, rows, got)
}

func TestEncoderYieldsMultipleChunksOverBudget(t *testing.T) {
	columns := getColumns(t, "UInt8")
	var rows []stream.Row
	for i := range 10 {
		rows = append(rows, stream.Row{uint8(i)})
	}

	// safetyMargin >= budget forces threshold() to clamp to 0, so the
	// encoder yields after every single encoded row.
	enc := stream.NewEncoder(1, 1)
	var chunks [][]byte
	for chunk, err := range enc.EncodeRows(columns, seqOf(rows...)) {
		require.NoError(t, err)
		chunks = append(chunks, append([]byte(nil), chunk...))
	}
	enc.Finish()

	assert.Equal(t, len(rows), len(chunks))
	for _, c := range chunks {
		assert.Equal(t, 1, len(c))
	}
}
