package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayFastPathUInt32(t *testing.T) {
	c, err := codec.Get("Array(UInt32)")
	require.NoError(t, err)

	in := []uint32{10, 20, 30, 4000000000}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestArrayFastPathEmpty(t *testing.T) {
	c, err := codec.Get("Array(Float64)")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, []any(nil)))
	assert.Equal(t, []byte{0}, w.Bytes())

	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, []float64{}, out)
	w.Finish()
}

func TestArrayGenericPathOfString(t *testing.T) {
	c, err := codec.Get("Array(String)")
	require.NoError(t, err)

	in := []any{"a", "bb", "ccc"}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestArrayOfArrayNested(t *testing.T) {
	c, err := codec.Get("Array(Array(String))")
	require.NoError(t, err)

	in := []any{[]any{"a", "b"}, []any{}, []any{"c"}}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}
