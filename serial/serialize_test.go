package serial

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func TestElementSizes(t *testing.T) {
	tests := []struct {
		element any
		want    int
	}{
		{bool(false), 1},
		{int8(0), 1},
		{uint8(0), 1},
		{int16(0), 2},
		{uint16(0), 2},
		{int32(0), 4},
		{uint32(0), 4},
		{int64(0), 8},
		{uint64(0), 8},
		{float32(0), 4},
		{float64(0), 8},
		{chainhash.Hash{}, 32},
	}

	for _, tt := range tests {
		got, err := SerializedSize(0, tt.element)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "size of %T", tt.element)
	}
}

func TestElementRoundTrips(t *testing.T) {
	var s Stream
	hash := chainhash.Hash{0xde, 0xad, 0xbe, 0xef}

	require.NoError(t, WriteMany(&s,
		true,
		int8(-5),
		uint8(0xa0),
		int16(-12345),
		uint16(54321),
		int32(-7),
		uint32(0xdeadbeef),
		int64(-1234567890123),
		uint64(0xfedcba9876543210),
		float32(785.066650390625),
		float64(-0.5),
		hash,
		"testing",
		[]byte{1, 2, 3},
	))

	var (
		gotBool bool
		gotI8   int8
		gotU8   uint8
		gotI16  int16
		gotU16  uint16
		gotI32  int32
		gotU32  uint32
		gotI64  int64
		gotU64  uint64
		gotF32  float32
		gotF64  float64
		gotHash chainhash.Hash
		gotStr  string
		gotBuf  []byte
	)
	require.NoError(t, ReadMany(&s,
		&gotBool, &gotI8, &gotU8, &gotI16, &gotU16, &gotI32, &gotU32,
		&gotI64, &gotU64, &gotF32, &gotF64, &gotHash, &gotStr, &gotBuf,
	))

	require.True(t, gotBool)
	require.Equal(t, int8(-5), gotI8)
	require.Equal(t, uint8(0xa0), gotU8)
	require.Equal(t, int16(-12345), gotI16)
	require.Equal(t, uint16(54321), gotU16)
	require.Equal(t, int32(-7), gotI32)
	require.Equal(t, uint32(0xdeadbeef), gotU32)
	require.Equal(t, int64(-1234567890123), gotI64)
	require.Equal(t, uint64(0xfedcba9876543210), gotU64)
	require.Equal(t, float32(785.066650390625), gotF32)
	require.Equal(t, float64(-0.5), gotF64)
	require.Equal(t, hash, gotHash)
	require.Equal(t, "testing", gotStr)
	require.Equal(t, []byte{1, 2, 3}, gotBuf)
	require.Equal(t, 0, s.Len())
}

func TestWriteManyMatchesSingleCalls(t *testing.T) {
	var many, singles Stream

	require.NoError(t, WriteMany(&many, int32(100), true, "testing"))

	require.NoError(t, WriteElement(&singles, int32(100)))
	require.NoError(t, WriteElement(&singles, true))
	require.NoError(t, WriteElement(&singles, "testing"))

	require.Equal(t, singles.Bytes(), many.Bytes())
}

// Digest fixtures for the serialized forms of 0..999: the encodings
// are little-endian bit patterns, so the double-SHA256 of the whole
// run pins the layout across platforms.
func TestFloatsDigest(t *testing.T) {
	var s Stream
	for i := 0; i < 1000; i++ {
		require.NoError(t, WriteElement(&s, float32(i)))
	}
	h := chainhash.DoubleHashH(s.Bytes())
	require.Equal(t,
		"8e8b4cf3e4df8b332057e3e23af42ebc663b61e0495d5e7e32d85099d7f3fe0c",
		h.String())

	for i := 0; i < 1000; i++ {
		var f float32
		require.NoError(t, ReadElement(&s, &f))
		require.Equal(t, float32(i), f)
	}
}

func TestDoublesDigest(t *testing.T) {
	var s Stream
	for i := 0; i < 1000; i++ {
		require.NoError(t, WriteElement(&s, float64(i)))
	}
	h := chainhash.DoubleHashH(s.Bytes())
	require.Equal(t,
		"43d0c82591953c4eafe114590d392676a01585d25b25d433557f0d7878b23f96",
		h.String())

	for i := 0; i < 1000; i++ {
		var f float64
		require.NoError(t, ReadElement(&s, &f))
		require.Equal(t, float64(i), f)
	}
}

func TestBlobRoundTrip(t *testing.T) {
	var s Stream
	require.NoError(t, WriteBlob(&s, []byte{1, 2, 3, 4}))
	require.Equal(t, 4, s.Len())

	got := make([]byte, 4)
	require.NoError(t, ReadBlob(&s, got))
	require.Equal(t, []byte{1, 2, 3, 4}, got)

	require.ErrorIs(t, ReadBlob(&s, got), ErrUnderflow)
}

func TestVarBytesOversize(t *testing.T) {
	var s Stream
	err := WriteVarBytes(&s, make([]byte, 10), 5)
	require.ErrorIs(t, err, ErrOversize)
	require.Equal(t, 0, s.Len())
}
