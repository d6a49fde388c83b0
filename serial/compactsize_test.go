package serial

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactSizeBitPatterns(t *testing.T) {
	tests := []struct {
		value uint64
		want  string
	}{
		{0, "00"},
		{0xfc, "fc"},
		{0xfd, "fdfd00"},
		{0xffff, "fdffff"},
		{0x10000, "fe00000100"},
		{0xffffffff, "feffffffff"},
		{0x100000000, "ff0000000001000000"},
	}

	for _, tt := range tests {
		var s Stream
		require.NoError(t, WriteCompactSize(&s, tt.value, math.MaxUint64))
		require.Equal(t, tt.want, hex.EncodeToString(s.Bytes()), "value %#x", tt.value)
		require.Equal(t, len(tt.want)/2, CompactSizeLen(tt.value))

		got, err := ReadCompactSize(&s, math.MaxUint64)
		require.NoError(t, err)
		require.Equal(t, tt.value, got)
	}
}

func TestCompactSizeNonCanonical(t *testing.T) {
	rejected := []string{
		"fd0000",             // zero in 3-byte form
		"fdfc00",             // 0xfc in 3-byte form
		"fe00000000",         // zero in 5-byte form
		"feffff0000",         // 0xffff in 5-byte form
		"ff0000000000000000", // zero in 9-byte form
		"ffffffffff01000000", // 0x01ffffff in 9-byte form
	}

	for _, fixture := range rejected {
		s := NewStreamBytes(mustHex(t, fixture))
		_, err := ReadCompactSize(s, math.MaxUint64)
		require.ErrorIs(t, err, ErrFormat, "fixture %s", fixture)
	}

	// 0xfd in 3-byte form is the canonical encoding of 0xfd.
	s := NewStreamBytes(mustHex(t, "fdfd00"))
	got, err := ReadCompactSize(s, math.MaxUint64)
	require.NoError(t, err)
	require.Equal(t, uint64(0xfd), got)
}

func TestCompactSizeScanRoundTrip(t *testing.T) {
	var s Stream
	for i := uint64(1); i <= DefaultMaxSize; i *= 2 {
		require.NoError(t, WriteCompactSize(&s, i-1, DefaultMaxSize))
		require.NoError(t, WriteCompactSize(&s, i, DefaultMaxSize))
	}
	for i := uint64(1); i <= DefaultMaxSize; i *= 2 {
		j, err := ReadCompactSize(&s, DefaultMaxSize)
		require.NoError(t, err)
		require.Equal(t, i-1, j)

		j, err = ReadCompactSize(&s, DefaultMaxSize)
		require.NoError(t, err)
		require.Equal(t, i, j)
	}
	require.Equal(t, 0, s.Len())
}

func TestCompactSizeOversizeWrite(t *testing.T) {
	var s Stream
	for _, v := range []uint64{DefaultMaxSize + 1, math.MaxInt64, math.MaxUint64} {
		err := WriteCompactSize(&s, v, DefaultMaxSize)
		require.ErrorIs(t, err, ErrOversize, "value %#x", v)
		require.Equal(t, 0, s.Len(), "oversize encode must not emit bytes")
	}
}

func TestCompactSizeOverCapRead(t *testing.T) {
	// 0x03000000 is canonically encoded but above the default cap.
	s := NewStreamBytes(mustHex(t, "fe00000003"))
	_, err := ReadCompactSize(s, DefaultMaxSize)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCompactSizeTruncated(t *testing.T) {
	s := NewStreamBytes(mustHex(t, "fdfd"))
	_, err := ReadCompactSize(s, DefaultMaxSize)
	require.ErrorIs(t, err, ErrUnderflow)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
