package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRoundTripAsGoMap(t *testing.T) {
	c, err := codec.Get("Map(String, Int64)")
	require.NoError(t, err)

	in := map[any]any{"a": int64(1), "b": int64(2)}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestMapDuplicateKeysLastWriteWinsAsGoMap(t *testing.T) {
	c, err := codec.Get("Map(String, Int64)")
	require.NoError(t, err)

	in := []codec.KV{
		{Key: "a", Value: int64(1)},
		{Key: "a", Value: int64(2)},
	}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, map[any]any{"a": int64(2)}, out)
	w.Finish()
}

func TestMapAsArrayPreservesDuplicateKeysAndOrder(t *testing.T) {
	c, err := codec.Get("Map(String, Int64)")
	require.NoError(t, err)

	in := []codec.KV{
		{Key: "a", Value: int64(1)},
		{Key: "a", Value: int64(2)},
		{Key: "b", Value: int64(3)},
	}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes(), codec.WithMapAsArray(true))
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}
