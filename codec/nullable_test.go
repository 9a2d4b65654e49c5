package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullablePresentValue(t *testing.T) {
	c, err := codec.Get("Nullable(String)")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, "hi"))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
	w.Finish()
}

func TestNullableNilValue(t *testing.T) {
	c, err := codec.Get("Nullable(Int32)")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, nil))
	assert.Equal(t, []byte{1}, w.Bytes())

	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Nil(t, out)
	w.Finish()
}

func TestNullableArrayOfUInt16(t *testing.T) {
	c, err := codec.Get("Nullable(Array(UInt16))")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, []uint16{1, 2, 3}))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3}, out)
	w.Finish()
}
