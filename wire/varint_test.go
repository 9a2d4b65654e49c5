package wire_test

import (
	"testing"

	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 255, 300, 1 << 20, 1<<63 - 1, 1<<64 - 1}
	for _, v := range cases {
		w := wire.NewWriter()
		wire.WriteUvarint(w, v)
		cur := wire.NewCursor(w.Bytes(), wire.Options{})
		got, err := wire.ReadUvarint(cur)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(w.Bytes()), cur.Offset)
		w.Finish()
	}
}

func TestUvarintUnderflow(t *testing.T) {
	w := wire.NewWriter()
	wire.WriteUvarint(w, 1<<20)
	full := append([]byte(nil), w.Bytes()...)
	w.Finish()

	cur := wire.NewCursor(full[:len(full)-1], wire.Options{})
	_, err := wire.ReadUvarint(cur)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnderflow)
	assert.Equal(t, 0, cur.Offset)
}

func TestUvarintSizeMatchesWrittenLength(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16384, 1 << 40} {
		w := wire.NewWriter()
		wire.WriteUvarint(w, v)
		assert.Equal(t, wire.UvarintSize(v), len(w.Bytes()))
		w.Finish()
	}
}
