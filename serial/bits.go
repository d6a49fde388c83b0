package serial

import "math"

// Floats travel on the wire as their raw IEEE-754 bit patterns packed
// little-endian, so encodings are identical across hosts regardless of
// native float handling. The conversions below are total bijections:
// signed zero and every NaN payload survive a round trip unchanged.

// Float32Bits returns the IEEE-754 bit pattern of f.
func Float32Bits(f float32) uint32 { return math.Float32bits(f) }

// Float32FromBits reconstructs the float32 with bit pattern b.
func Float32FromBits(b uint32) float32 { return math.Float32frombits(b) }

// Float64Bits returns the IEEE-754 bit pattern of f.
func Float64Bits(f float64) uint64 { return math.Float64bits(f) }

// Float64FromBits reconstructs the float64 with bit pattern b.
func Float64FromBits(b uint64) float64 { return math.Float64frombits(b) }
