package typedesc_test

import (
	"testing"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/typedesc"
	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, typeStr string) chtype.Node {
	t.Helper()
	n, err := chtype.Parse(typeStr)
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, typedesc.Write(w, n))
	cur := wire.NewCursor(w.Bytes(), wire.Options{})
	got, err := typedesc.Read(cur)
	require.NoError(t, err)
	assert.Equal(t, len(w.Bytes()), cur.Offset)
	w.Finish()

	return got
}

func TestTypedescScalarsRoundTrip(t *testing.T) {
	for _, typeStr := range []string{
		"Nothing", "UInt8", "UInt16", "UInt32", "UInt64", "UInt128", "UInt256",
		"Int8", "Int16", "Int32", "Int64", "Int128", "Int256",
		"Float32", "Float64", "Date", "Date32", "DateTime",
		"String", "UUID", "IPv4", "IPv6", "Dynamic", "Bool",
	} {
		got := roundTrip(t, typeStr)
		assert.Equal(t, typeStr, got.String(), typeStr)
	}
}

func TestTypedescNullableRoundTrip(t *testing.T) {
	got := roundTrip(t, "Nullable(String)")
	assert.Equal(t, "Nullable(String)", got.String())
}

func TestTypedescArrayRoundTrip(t *testing.T) {
	got := roundTrip(t, "Array(Int64)")
	assert.Equal(t, "Array(Int64)", got.String())
}

func TestTypedescMapRoundTrip(t *testing.T) {
	got := roundTrip(t, "Map(String, Int64)")
	assert.Equal(t, "Map(String, Int64)", got.String())
}

func TestTypedescTuplePositionalRoundTrip(t *testing.T) {
	got := roundTrip(t, "Tuple(String, Int64)")
	assert.Equal(t, "Tuple(String, Int64)", got.String())
}

func TestTypedescTupleNamedRoundTrip(t *testing.T) {
	got := roundTrip(t, "Tuple(a String, b Int64)")
	assert.Equal(t, "Tuple(a String, b Int64)", got.String())
}

func TestTypedescVariantRoundTrip(t *testing.T) {
	got := roundTrip(t, "Variant(String, Int64)")
	assert.Equal(t, "Variant(String, Int64)", got.String())
}

func TestTypedescFixedStringRoundTrip(t *testing.T) {
	got := roundTrip(t, "FixedString(16)")
	assert.Equal(t, "FixedString(16)", got.String())
}

func TestTypedescEnum8And16RoundTrip(t *testing.T) {
	got8 := roundTrip(t, "Enum8('a' = 1, 'b' = 2)")
	assert.Equal(t, "Enum8", got8.String())

	got16 := roundTrip(t, "Enum16('a' = 1000, 'b' = 2000)")
	assert.Equal(t, "Enum16", got16.String())
}

func TestTypedescDateTime64WithoutTimezoneRoundTrip(t *testing.T) {
	got := roundTrip(t, "DateTime64(3)")
	assert.Equal(t, "DateTime64(3)", got.String())
}

func TestTypedescDateTime64WithTimezoneRoundTrip(t *testing.T) {
	got := roundTrip(t, "DateTime64(6, 'UTC')")
	assert.Equal(t, "DateTime64(6, 'UTC')", got.String())
}

func TestTypedescDecimalFamilyRoundTrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Decimal(9, 2)", "Decimal32(2)"},
		{"Decimal(18, 4)", "Decimal64(4)"},
		{"Decimal(38, 10)", "Decimal128(10)"},
		{"Decimal(76, 5)", "Decimal256(5)"},
		{"Decimal32(3)", "Decimal32(3)"},
		{"Decimal64(5)", "Decimal64(5)"},
		{"Decimal128(20)", "Decimal128(20)"},
		{"Decimal256(30)", "Decimal256(30)"},
	}
	for _, tc := range cases {
		got := roundTrip(t, tc.in)
		assert.Equal(t, tc.want, got.String(), tc.in)
	}
}
