package serial

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// VarInt is a compact encoding for integers of arbitrary magnitude:
// base-128 groups, most significant group first. Every non-final byte
// has its high bit set and stores its group value minus one, which
// makes each magnitude representable by exactly one byte sequence and
// keeps the encoding minimal. Signed values are reinterpreted as the
// unsigned bit pattern of the same width, not zig-zag transformed.
//
// The longest run that can still encode a 64-bit value is ten bytes
// (0xffffffffffffffff -> 80 fe fe fe fe fe fe fe fe 7f). Decoding
// stops with ErrOverflow once a run can no longer fit the destination,
// and refuses to consume more than ten bytes no matter the
// destination, so corrupt input cannot trigger unbounded reads.
const maxVarIntLen = 10

// WriteVarInt encodes v to w.
func WriteVarInt[T constraints.Integer](w io.Writer, v T) error {
	var tmp [maxVarIntLen]byte
	n := unsignedBits(v)
	i := len(tmp)
	for {
		i--
		tmp[i] = byte(n & 0x7f)
		if i < len(tmp)-1 {
			tmp[i] |= 0x80
		}
		if n <= 0x7f {
			break
		}
		n = n>>7 - 1
	}
	_, err := w.Write(tmp[i:])
	return err
}

// ReadVarInt decodes a VarInt from r into the destination type T.
func ReadVarInt[T constraints.Integer](r io.Reader) (T, error) {
	max := unsignedMax[T]()
	var n uint64
	for i := 0; i < maxVarIntLen; i++ {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		if n > max>>7 {
			return 0, fmt.Errorf("varint: %w", ErrOverflow)
		}
		n = n<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return fromUnsignedBits[T](n), nil
		}
		if n == max {
			return 0, fmt.Errorf("varint: %w", ErrOverflow)
		}
		n++
	}
	return 0, fmt.Errorf("varint: run longer than %d bytes: %w", maxVarIntLen, ErrOverflow)
}

// VarIntSize returns the number of bytes WriteVarInt produces for v.
func VarIntSize[T constraints.Integer](v T) int {
	n := unsignedBits(v)
	size := 1
	for n > 0x7f {
		size++
		n = n>>7 - 1
	}
	return size
}

// unsignedBits maps v to its same-width unsigned bit pattern, widened
// to uint64. A closed type switch rather than reflection: the codec
// supports exactly the fixed-width integer kinds.
func unsignedBits[T constraints.Integer](v T) uint64 {
	switch x := any(v).(type) {
	case int8:
		return uint64(uint8(x))
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case int:
		return uint64(uint(x))
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uint:
		return uint64(x)
	default:
		return uint64(v)
	}
}

// fromUnsignedBits is the inverse of unsignedBits; n must already fit
// the width of T.
func fromUnsignedBits[T constraints.Integer](n uint64) T {
	return T(n)
}

// unsignedMax returns the largest bit pattern representable in T's
// width. Signed destinations accept the full unsigned range of their
// width because decoding reverses a bit-pattern reinterpretation.
func unsignedMax[T constraints.Integer]() uint64 {
	switch any(T(0)).(type) {
	case int8, uint8:
		return math.MaxUint8
	case int16, uint16:
		return math.MaxUint16
	case int32, uint32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}
