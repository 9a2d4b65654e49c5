package wire_test

import (
	"math"
	"testing"

	"github.com/lithiumdb/chwire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, -0, 1.5, -123456.789, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		w := wire.NewWriter()
		wire.WriteFloat64(w, v)
		var b [8]byte
		copy(b[:], w.Bytes())
		got, nanWrap, isNaN := wire.DecodeFloat64(b)
		require.False(t, isNaN)
		assert.Equal(t, wire.Float64NaN{}, nanWrap)
		assert.Equal(t, v, got)
		w.Finish()
	}
}

func TestFloat64SignalingNaNRoundTripIsBitExact(t *testing.T) {
	// A signaling NaN: quiet bit (bit 51) clear, some other mantissa bit set.
	bits := uint64(0x7FF0000000000001)
	signalingNaN := math.Float64frombits(bits)
	require.True(t, math.IsNaN(signalingNaN))

	w := wire.NewWriter()
	wire.WriteFloat64(w, signalingNaN)
	var b [8]byte
	copy(b[:], w.Bytes())
	w.Finish()

	_, nanWrap, isNaN := wire.DecodeFloat64(b)
	require.True(t, isNaN)
	assert.Equal(t, bits, beToU64(nanWrap.Bits))

	w2 := wire.NewWriter()
	wire.WriteFloat64NaN(w2, nanWrap)
	assert.Equal(t, b[:], w2.Bytes(), "re-encoding the NaN wrapper must reproduce the exact original bytes")
	w2.Finish()
}

func TestFloat32SignalingNaNRoundTripIsBitExact(t *testing.T) {
	bits := uint32(0x7F800001)
	signalingNaN := math.Float32frombits(bits)
	require.True(t, math.IsNaN(float64(signalingNaN)))

	w := wire.NewWriter()
	wire.WriteFloat32(w, signalingNaN)
	var b [4]byte
	copy(b[:], w.Bytes())
	w.Finish()

	_, nanWrap, isNaN := wire.DecodeFloat32(b)
	require.True(t, isNaN)

	w2 := wire.NewWriter()
	wire.WriteFloat32NaN(w2, nanWrap)
	assert.Equal(t, b[:], w2.Bytes())
	w2.Finish()
}

// beToU64 reinterprets a little-endian 8-byte wire payload back to a uint64
// for comparison against the original bit pattern.
func beToU64(b [8]byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v
}
