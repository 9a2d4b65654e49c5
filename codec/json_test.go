package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTripPreservesOrderAndTypes(t *testing.T) {
	c, err := codec.Get("JSON")
	require.NoError(t, err)

	in := []codec.JSONField{
		{Path: "a.b", Value: "hi"},
		{Path: "a.c", Value: 5.0},
		{Path: "z", Value: nil},
	}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)

	fields := out.([]codec.JSONField)
	require.Len(t, fields, 3)
	assert.Equal(t, "a.b", fields[0].Path)
	assert.Equal(t, "hi", fields[0].Value)
	assert.Equal(t, "a.c", fields[1].Path)
	assert.Equal(t, int64(5), fields[1].Value)
	assert.Equal(t, "z", fields[2].Path)
	assert.Nil(t, fields[2].Value)
	w.Finish()
}

func TestJSONDuplicatePathsBothSurvive(t *testing.T) {
	c, err := codec.Get("JSON")
	require.NoError(t, err)

	in := []codec.JSONField{
		{Path: "a", Value: "first"},
		{Path: "a", Value: "second"},
	}
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}

func TestObjectIsAliasForJSON(t *testing.T) {
	jc, err := codec.Get("JSON")
	require.NoError(t, err)
	oc, err := codec.Get("Object('json')")
	require.NoError(t, err)

	in := []codec.JSONField{{Path: "x", Value: "y"}}
	w := wire.NewWriter()
	require.NoError(t, oc.Encode(w, in))
	cur := codec.NewCursor(w.Bytes())
	out, err := jc.Decode(cur)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	w.Finish()
}
