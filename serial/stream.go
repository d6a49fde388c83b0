package serial

import (
	"fmt"
	"io"
)

// Stream is a growable byte buffer combining sequential write/read
// cursor semantics with mid-buffer editing. Writes append at the end;
// reads consume from the front and never pass the write end. Offsets
// for Byte, Insert and Erase are relative to the unconsumed region.
//
// A Stream is exclusively owned by one logical operation and has no
// internal locking; callers that share one must serialize access
// themselves.
type Stream struct {
	buf     []byte
	readPos int
}

// NewStream returns an empty stream.
func NewStream() *Stream { return &Stream{} }

// NewStreamBytes returns a stream that takes ownership of b as its
// initial unconsumed content.
func NewStreamBytes(b []byte) *Stream { return &Stream{buf: b} }

// Len returns the number of unconsumed bytes.
func (s *Stream) Len() int { return len(s.buf) - s.readPos }

// Bytes returns the unconsumed bytes as a view into the backing
// storage. The view is invalidated by any mutation of the stream.
func (s *Stream) Bytes() []byte { return s.buf[s.readPos:] }

// Byte returns the byte at offset i in the unconsumed region,
// independent of the read cursor. It panics if i is out of range, like
// a slice index.
func (s *Stream) Byte(i int) byte { return s.buf[s.readPos+i] }

// Write appends p at the write end. It never fails.
func (s *Stream) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteByte appends a single byte.
func (s *Stream) WriteByte(b byte) error {
	s.buf = append(s.buf, b)
	return nil
}

// Read consumes len(p) bytes into p, advancing the read cursor. If
// fewer bytes remain it fails with ErrUnderflow and consumes nothing.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > s.Len() {
		return 0, fmt.Errorf("stream: read %d of %d bytes: %w", len(p), s.Len(), ErrUnderflow)
	}
	n := copy(p, s.buf[s.readPos:])
	s.advance(n)
	return n, nil
}

// ReadByte consumes and returns the next byte.
func (s *Stream) ReadByte() (byte, error) {
	if s.Len() == 0 {
		return 0, fmt.Errorf("stream: read 1 of 0 bytes: %w", ErrUnderflow)
	}
	b := s.buf[s.readPos]
	s.advance(1)
	return b, nil
}

// Insert places b at offset i of the unconsumed region, shifting later
// bytes up without reordering them. i may equal Len to append.
func (s *Stream) Insert(i int, b byte) {
	at := s.readPos + i
	s.buf = append(s.buf, 0)
	copy(s.buf[at+1:], s.buf[at:])
	s.buf[at] = b
}

// Erase removes the byte at offset i of the unconsumed region,
// preserving the relative order of the remaining bytes.
func (s *Stream) Erase(i int) {
	at := s.readPos + i
	s.buf = append(s.buf[:at], s.buf[at+1:]...)
}

// Clear drops all content and resets the cursors. The backing storage
// is retained for reuse.
func (s *Stream) Clear() {
	s.buf = s.buf[:0]
	s.readPos = 0
}

// TakeBytes hands the unconsumed backing storage to the caller and
// leaves the stream empty. The returned slice is owned by the caller.
func (s *Stream) TakeBytes() []byte {
	b := s.buf[s.readPos:]
	s.buf = nil
	s.readPos = 0
	return b
}

// advance moves the read cursor and rewinds the buffer once everything
// has been consumed, so long-lived streams do not accumulate dead
// prefix bytes.
func (s *Stream) advance(n int) {
	s.readPos += n
	if s.readPos == len(s.buf) {
		s.buf = s.buf[:0]
		s.readPos = 0
	}
}

var (
	_ io.ReadWriter = (*Stream)(nil)
	_ io.ByteReader = (*Stream)(nil)
	_ io.ByteWriter = (*Stream)(nil)
)
