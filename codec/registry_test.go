package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCachesSameInstance(t *testing.T) {
	c1, err := codec.Get("UInt64")
	require.NoError(t, err)
	c2, err := codec.Get("UInt64")
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}

func TestGetUnknownTypeErrors(t *testing.T) {
	_, err := codec.Get("NotARealType")
	require.Error(t, err)
}

func TestLowCardinalityIsTransparentPassThrough(t *testing.T) {
	c, err := codec.Get("LowCardinality(String)")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, "x"))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, "x", out)
	w.Finish()
}

func TestEnum8RoundTripsAsInt8(t *testing.T) {
	c, err := codec.Get("Enum8('a' = 1, 'b' = 2)")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, int8(2)))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, int8(2), out)
	w.Finish()
}

func TestEnum16RoundTripsAsInt16(t *testing.T) {
	c, err := codec.Get("Enum16('a' = 1000, 'b' = 2000)")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, int16(2000)))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, int16(2000), out)
	w.Finish()
}

func TestPointIsTupleOfTwoFloat64(t *testing.T) {
	c, err := codec.Get("Point")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, []any{1.5, 2.5}))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, []any{1.5, 2.5}, out)
	w.Finish()
}

func TestRingIsArrayOfPoint(t *testing.T) {
	c, err := codec.Get("Ring")
	require.NoError(t, err)

	in := []any{[]any{0.0, 0.0}, []any{1.0, 1.0}}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestPolygonIsArrayOfRing(t *testing.T) {
	c, err := codec.Get("Polygon")
	require.NoError(t, err)

	in := []any{
		[]any{[]any{0.0, 0.0}, []any{1.0, 1.0}},
	}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}
