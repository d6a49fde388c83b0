package serial

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// readFull fills buf from r, mapping a short read to ErrUnderflow.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("need %d bytes: %w", len(buf), ErrUnderflow)
		}
		return err
	}
	return nil
}

func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("need 1 byte: %w", ErrUnderflow)
		}
		return b, err
	}
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteElement writes a single value of the supported vocabulary to w:
// fixed-width integers little-endian, bool as one byte, floats as
// their bit patterns, fixed-size digests raw, strings and byte slices
// with a CompactSize length prefix. The closed type switch is the
// dispatch mechanism; no reflection is involved.
func WriteElement(w io.Writer, element any) error {
	var buf [8]byte
	switch e := element.(type) {
	case bool:
		if e {
			buf[0] = 1
		}
		_, err := w.Write(buf[:1])
		return err
	case int8:
		buf[0] = byte(e)
		_, err := w.Write(buf[:1])
		return err
	case uint8:
		buf[0] = e
		_, err := w.Write(buf[:1])
		return err
	case int16:
		binary.LittleEndian.PutUint16(buf[:2], uint16(e))
		_, err := w.Write(buf[:2])
		return err
	case uint16:
		binary.LittleEndian.PutUint16(buf[:2], e)
		_, err := w.Write(buf[:2])
		return err
	case int32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(e))
		_, err := w.Write(buf[:4])
		return err
	case uint32:
		binary.LittleEndian.PutUint32(buf[:4], e)
		_, err := w.Write(buf[:4])
		return err
	case int64:
		binary.LittleEndian.PutUint64(buf[:8], uint64(e))
		_, err := w.Write(buf[:8])
		return err
	case uint64:
		binary.LittleEndian.PutUint64(buf[:8], e)
		_, err := w.Write(buf[:8])
		return err
	case float32:
		binary.LittleEndian.PutUint32(buf[:4], Float32Bits(e))
		_, err := w.Write(buf[:4])
		return err
	case float64:
		binary.LittleEndian.PutUint64(buf[:8], Float64Bits(e))
		_, err := w.Write(buf[:8])
		return err
	case chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	case string:
		return WriteVarString(w, e, DefaultMaxSize)
	case []byte:
		return WriteVarBytes(w, e, DefaultMaxSize)
	}
	return fmt.Errorf("unsupported element type %T", element)
}

// ReadElement reads a single value from r into the pointed-to
// destination, mirroring WriteElement byte for byte.
func ReadElement(r io.Reader, element any) error {
	var buf [8]byte
	switch e := element.(type) {
	case *bool:
		b, err := readByte(r)
		if err != nil {
			return err
		}
		*e = b != 0
		return nil
	case *int8:
		b, err := readByte(r)
		if err != nil {
			return err
		}
		*e = int8(b)
		return nil
	case *uint8:
		b, err := readByte(r)
		if err != nil {
			return err
		}
		*e = b
		return nil
	case *int16:
		if err := readFull(r, buf[:2]); err != nil {
			return err
		}
		*e = int16(binary.LittleEndian.Uint16(buf[:2]))
		return nil
	case *uint16:
		if err := readFull(r, buf[:2]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint16(buf[:2])
		return nil
	case *int32:
		if err := readFull(r, buf[:4]); err != nil {
			return err
		}
		*e = int32(binary.LittleEndian.Uint32(buf[:4]))
		return nil
	case *uint32:
		if err := readFull(r, buf[:4]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:4])
		return nil
	case *int64:
		if err := readFull(r, buf[:8]); err != nil {
			return err
		}
		*e = int64(binary.LittleEndian.Uint64(buf[:8]))
		return nil
	case *uint64:
		if err := readFull(r, buf[:8]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint64(buf[:8])
		return nil
	case *float32:
		if err := readFull(r, buf[:4]); err != nil {
			return err
		}
		*e = Float32FromBits(binary.LittleEndian.Uint32(buf[:4]))
		return nil
	case *float64:
		if err := readFull(r, buf[:8]); err != nil {
			return err
		}
		*e = Float64FromBits(binary.LittleEndian.Uint64(buf[:8]))
		return nil
	case *chainhash.Hash:
		return readFull(r, e[:])
	case *string:
		s, err := ReadVarString(r, DefaultMaxSize)
		if err != nil {
			return err
		}
		*e = s
		return nil
	case *[]byte:
		b, err := ReadVarBytes(r, DefaultMaxSize)
		if err != nil {
			return err
		}
		*e = b
		return nil
	}
	return fmt.Errorf("unsupported element type %T", element)
}

// WriteMany writes the elements in argument order. It is sugar for
// repeated WriteElement calls and shares their exact wire form.
func WriteMany(w io.Writer, elements ...any) error {
	for _, e := range elements {
		if err := WriteElement(w, e); err != nil {
			return err
		}
	}
	return nil
}

// ReadMany reads into the element pointers in argument order.
func ReadMany(r io.Reader, elements ...any) error {
	for _, e := range elements {
		if err := ReadElement(r, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteBlob writes b raw, with no length prefix. The reader must know
// the size out of band.
func WriteBlob(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

// ReadBlob fills b from r.
func ReadBlob(r io.Reader, b []byte) error {
	return readFull(r, b)
}

// WriteVarBytes writes a CompactSize length prefix followed by b.
func WriteVarBytes(w io.Writer, b []byte, maxSize uint64) error {
	if err := WriteCompactSize(w, uint64(len(b)), maxSize); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadVarBytes reads a CompactSize-prefixed byte sequence.
func ReadVarBytes(r io.Reader, maxSize uint64) ([]byte, error) {
	n, err := ReadCompactSize(r, maxSize)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if err := readFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarString writes s as a CompactSize-prefixed byte sequence.
func WriteVarString(w io.Writer, s string, maxSize uint64) error {
	if err := WriteCompactSize(w, uint64(len(s)), maxSize); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadVarString reads a CompactSize-prefixed string.
func ReadVarString(r io.Reader, maxSize uint64) (string, error) {
	b, err := ReadVarBytes(r, maxSize)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
