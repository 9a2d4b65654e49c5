package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuplePositionalRoundTrip(t *testing.T) {
	c, err := codec.Get("Tuple(String, Int64)")
	require.NoError(t, err)

	in := []any{"hi", int64(42)}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestTupleNamedRoundTrip(t *testing.T) {
	c, err := codec.Get("Tuple(a String, b Int64)")
	require.NoError(t, err)

	in := map[string]any{"a": "hi", "b": int64(42)}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestTuplePositionalWrongArityErrors(t *testing.T) {
	c, err := codec.Get("Tuple(String, Int64)")
	require.NoError(t, err)

	w := wire.NewWriter()
	defer w.Finish()
	err = c.Encode(w, []any{"only one"})
	require.Error(t, err)
}

func TestTupleNamedMissingFieldErrors(t *testing.T) {
	c, err := codec.Get("Tuple(a String, b Int64)")
	require.NoError(t, err)

	w := wire.NewWriter()
	defer w.Finish()
	err = c.Encode(w, map[string]any{"a": "hi"})
	require.Error(t, err)
}

func TestNestedEncodesAsArrayOfTuple(t *testing.T) {
	c, err := codec.Get("Nested(a String, b Int64)")
	require.NoError(t, err)

	in := []any{
		map[string]any{"a": "x", "b": int64(1)},
		map[string]any{"a": "y", "b": int64(2)},
	}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}
