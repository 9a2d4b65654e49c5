package chtype_test

import (
	"testing"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	n, err := chtype.Parse("UInt64")
	require.NoError(t, err)
	assert.Equal(t, "UInt64", n.Name)
	assert.Empty(t, n.Args)
}

func TestParseNested(t *testing.T) {
	n, err := chtype.Parse("Nullable(Array(Tuple(UInt64, LowCardinality(String))))")
	require.NoError(t, err)
	assert.Equal(t, "Nullable", n.Name)
	require.Len(t, n.Args, 1)
	assert.Equal(t, "Array", n.Args[0].Name)
	require.Len(t, n.Args[0].Args, 1)
	assert.Equal(t, "Tuple", n.Args[0].Args[0].Name)
	require.Len(t, n.Args[0].Args[0].Args, 2)
	assert.Equal(t, "UInt64", n.Args[0].Args[0].Args[0].Name)
	assert.Equal(t, "LowCardinality", n.Args[0].Args[0].Args[1].Name)
}

func TestParseNamedTuple(t *testing.T) {
	n, err := chtype.Parse("Tuple(a String, b Int64)")
	require.NoError(t, err)
	require.Len(t, n.Args, 2)
	assert.Equal(t, "a", n.Args[0].ElemName)
	assert.Equal(t, "String", n.Args[0].Name)
	assert.Equal(t, "b", n.Args[1].ElemName)
	assert.Equal(t, "Int64", n.Args[1].Name)
}

func TestParsePositionalTupleSingleIdent(t *testing.T) {
	n, err := chtype.Parse("Tuple(Int64, String)")
	require.NoError(t, err)
	require.Len(t, n.Args, 2)
	assert.Empty(t, n.Args[0].ElemName)
	assert.Equal(t, "Int64", n.Args[0].Name)
	assert.Empty(t, n.Args[1].ElemName)
}

func TestParseMixedNamedTupleRejected(t *testing.T) {
	_, err := chtype.Parse("Tuple(a String, Int64)")
	require.Error(t, err)
}

func TestParseMapStringDecimal(t *testing.T) {
	n, err := chtype.Parse("Map(String, Array(Nullable(Decimal(18, 4))))")
	require.NoError(t, err)
	assert.Equal(t, "Map", n.Name)
	require.Len(t, n.Args, 2)
	assert.Equal(t, "String", n.Args[0].Name)
	assert.Equal(t, "Array", n.Args[1].Name)
}

func TestParseDecimalParams(t *testing.T) {
	n, err := chtype.Parse("Decimal(18, 4)")
	require.NoError(t, err)
	assert.Equal(t, "Decimal", n.Name)
	require.Equal(t, []string{"18", "4"}, n.Params)
	assert.Empty(t, n.Args)
}

func TestParseFixedStringParam(t *testing.T) {
	n, err := chtype.Parse("FixedString(16)")
	require.NoError(t, err)
	assert.Equal(t, []string{"16"}, n.Params)
}

func TestParseDateTime64WithTimezone(t *testing.T) {
	n, err := chtype.Parse("DateTime64(3, 'UTC')")
	require.NoError(t, err)
	require.Equal(t, []string{"3", "'UTC'"}, n.Params)
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"UInt64",
		"Nullable(String)",
		"Array(UInt16)",
		"Tuple(a String, b Int64)",
		"Map(String, UInt8)",
	} {
		n, err := chtype.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, n.String())
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "1Invalid", "Array(String", "Array(String))", "Tuple(a String, Int64"} {
		_, err := chtype.Parse(s)
		assert.Error(t, err, s)
	}
}
