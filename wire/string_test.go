package wire_test

import (
	"strings"
	"testing"

	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTripShort(t *testing.T) {
	w := wire.NewWriter()
	wire.WriteString(w, "hi")
	cur := wire.NewCursor(w.Bytes(), wire.Options{})
	got, err := wire.ReadString(cur)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
	assert.Equal(t, len(w.Bytes()), cur.Offset)
	w.Finish()
}

func TestStringRoundTripEmpty(t *testing.T) {
	w := wire.NewWriter()
	wire.WriteString(w, "")
	cur := wire.NewCursor(w.Bytes(), wire.Options{})
	got, err := wire.ReadString(cur)
	require.NoError(t, err)
	assert.Equal(t, "", got)
	w.Finish()
}

func TestStringRoundTripLong(t *testing.T) {
	long := strings.Repeat("x", 500)
	w := wire.NewWriter()
	wire.WriteString(w, long)
	cur := wire.NewCursor(w.Bytes(), wire.Options{})
	got, err := wire.ReadString(cur)
	require.NoError(t, err)
	assert.Equal(t, long, got)
	assert.Equal(t, len(w.Bytes()), cur.Offset)
	w.Finish()
}

func TestStringLengthBoundaryAt127And128(t *testing.T) {
	for _, n := range []int{126, 127, 128, 129} {
		s := strings.Repeat("a", n)
		w := wire.NewWriter()
		wire.WriteString(w, s)
		cur := wire.NewCursor(w.Bytes(), wire.Options{})
		got, err := wire.ReadString(cur)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		w.Finish()
	}
}

func TestReadVarBytesUnderflowRestoresOffset(t *testing.T) {
	w := wire.NewWriter()
	wire.WriteString(w, "hello world")
	full := append([]byte(nil), w.Bytes()...)
	w.Finish()

	cur := wire.NewCursor(full[:len(full)-2], wire.Options{})
	_, err := wire.ReadVarBytes(cur)
	require.Error(t, err)
	assert.Equal(t, 0, cur.Offset, "underflow must restore the offset to before the length byte(s)")
}
