package codec_test

import (
	"testing"

	"github.com/lithiumdb/chwire/codec"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicInfersStringType(t *testing.T) {
	c, err := codec.Get("Dynamic")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, "hello"))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	dv := out.(codec.DynamicValue)
	assert.Equal(t, "String", dv.Type)
	assert.Equal(t, "hello", dv.Value)
	w.Finish()
}

func TestDynamicInfersIntegralFloatAsInt64(t *testing.T) {
	c, err := codec.Get("Dynamic")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, 5.0))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	dv := out.(codec.DynamicValue)
	assert.Equal(t, "Int64", dv.Type)
	assert.Equal(t, int64(5), dv.Value)
	w.Finish()
}

func TestDynamicInfersNonIntegralFloatAsFloat64(t *testing.T) {
	c, err := codec.Get("Dynamic")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, 5.5))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	dv := out.(codec.DynamicValue)
	assert.Equal(t, "Float64", dv.Type)
	assert.Equal(t, 5.5, dv.Value)
	w.Finish()
}

func TestDynamicNilEncodesAsNothingAndDecodesNil(t *testing.T) {
	c, err := codec.Get("Dynamic")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, nil))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	assert.Nil(t, out)
	w.Finish()
}

func TestDynamicExplicitValueBypassesInference(t *testing.T) {
	c, err := codec.Get("Dynamic")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, codec.DynamicValue{Type: "Float64", Value: float64(3)}))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	dv := out.(codec.DynamicValue)
	assert.Equal(t, "Float64", dv.Type)
	assert.Equal(t, float64(3), dv.Value)
	w.Finish()
}

func TestDynamicInfersEmptyArrayAsArrayOfNothing(t *testing.T) {
	c, err := codec.Get("Dynamic")
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, []any{}))
	cur := codec.NewCursor(w.Bytes())
	out, err := c.Decode(cur)
	require.NoError(t, err)
	dv := out.(codec.DynamicValue)
	assert.Equal(t, "Array(Nothing)", dv.Type)
	w.Finish()
}
