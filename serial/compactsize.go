package serial

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultMaxSize is the conventional protocol cap on CompactSize
// values (32 MiB). The cap is consensus policy rather than a property
// of the encoding, so every CompactSize call takes it as a parameter
// and nothing in this package interprets it beyond the comparison.
const DefaultMaxSize = 0x02000000

// CompactSize prefix markers for the 3/5/9-byte forms.
const (
	csPrefix16 = 0xfd
	csPrefix32 = 0xfe
	csPrefix64 = 0xff
)

// WriteCompactSize encodes v in the shortest of the 1/3/5/9-byte
// CompactSize forms. Values above maxSize fail with ErrOversize before
// any byte is written.
func WriteCompactSize(w io.Writer, v, maxSize uint64) error {
	if v > maxSize {
		return fmt.Errorf("compact size %d above cap %d: %w", v, maxSize, ErrOversize)
	}
	var buf [9]byte
	switch {
	case v < csPrefix16:
		buf[0] = byte(v)
		_, err := w.Write(buf[:1])
		return err
	case v <= 0xffff:
		buf[0] = csPrefix16
		binary.LittleEndian.PutUint16(buf[1:3], uint16(v))
		_, err := w.Write(buf[:3])
		return err
	case v <= 0xffffffff:
		buf[0] = csPrefix32
		binary.LittleEndian.PutUint32(buf[1:5], uint32(v))
		_, err := w.Write(buf[:5])
		return err
	default:
		buf[0] = csPrefix64
		binary.LittleEndian.PutUint64(buf[1:9], v)
		_, err := w.Write(buf[:9])
		return err
	}
}

// ReadCompactSize decodes a CompactSize value, rejecting any encoding
// longer than the canonical form for its magnitude with ErrFormat and
// any magnitude above maxSize with ErrOverflow.
func ReadCompactSize(r io.Reader, maxSize uint64) (uint64, error) {
	prefix, err := readByte(r)
	if err != nil {
		return 0, err
	}

	var v uint64
	switch prefix {
	case csPrefix16:
		var buf [2]byte
		if err := readFull(r, buf[:]); err != nil {
			return 0, err
		}
		v = uint64(binary.LittleEndian.Uint16(buf[:]))
		if v < csPrefix16 {
			return 0, fmt.Errorf("compact size %d in 3-byte form: %w", v, ErrFormat)
		}
	case csPrefix32:
		var buf [4]byte
		if err := readFull(r, buf[:]); err != nil {
			return 0, err
		}
		v = uint64(binary.LittleEndian.Uint32(buf[:]))
		if v <= 0xffff {
			return 0, fmt.Errorf("compact size %d in 5-byte form: %w", v, ErrFormat)
		}
	case csPrefix64:
		var buf [8]byte
		if err := readFull(r, buf[:]); err != nil {
			return 0, err
		}
		v = binary.LittleEndian.Uint64(buf[:])
		if v <= 0xffffffff {
			return 0, fmt.Errorf("compact size %d in 9-byte form: %w", v, ErrFormat)
		}
	default:
		v = uint64(prefix)
	}

	if v > maxSize {
		return 0, fmt.Errorf("compact size %d above cap %d: %w", v, maxSize, ErrOverflow)
	}
	return v, nil
}

// CompactSizeLen returns the encoded length of v without writing it.
func CompactSizeLen(v uint64) int {
	switch {
	case v < csPrefix16:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
