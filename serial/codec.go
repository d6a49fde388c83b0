package serial

import "io"

// Serializable is the capability contract for compound records. The
// protocol version is threaded through opaquely; this layer never
// interprets it.
type Serializable interface {
	Serialize(w io.Writer, pver uint32) error
	Deserialize(r io.Reader, pver uint32) error
}

// Codec folds the write and read directions of a serialization pass
// into one interface, so an aggregate declares its field walk exactly
// once and encode/decode symmetry is structural rather than maintained
// by hand across two methods. Pointer arguments are read from when
// writing and stored into when reading.
type Codec interface {
	// Reading reports the direction; container walks need it to size
	// their destination before visiting elements.
	Reading() bool

	// Version returns the protocol version of the pass, uninterpreted.
	Version() uint32

	Bool(*bool) error
	Uint8(*uint8) error
	Uint16(*uint16) error
	Uint32(*uint32) error
	Uint64(*uint64) error
	Int32(*int32) error
	Int64(*int64) error
	Float32(*float32) error
	Float64(*float64) error

	// Blob copies the bytes raw, with no length prefix.
	Blob([]byte) error

	// VarBytes and String carry a CompactSize length prefix bounded by
	// maxSize.
	VarBytes(b *[]byte, maxSize uint64) error
	String(s *string, maxSize uint64) error

	// CompactSize codes *v as a canonical length/count prefix.
	CompactSize(v *uint64, maxSize uint64) error
}

// Walker is implemented by aggregates that expose their ordered field
// list as a single codec walk.
type Walker interface {
	Walk(c Codec) error
}

// NewWriteCodec returns a Codec that serializes into w. Passing a
// counting destination turns the same walk into a size computation.
func NewWriteCodec(w io.Writer, pver uint32) Codec {
	return &writeCodec{w: w, pver: pver}
}

// NewReadCodec returns a Codec that deserializes from r.
func NewReadCodec(r io.Reader, pver uint32) Codec {
	return &readCodec{r: r, pver: pver}
}

type writeCodec struct {
	w    io.Writer
	pver uint32
}

func (c *writeCodec) Reading() bool            { return false }
func (c *writeCodec) Version() uint32          { return c.pver }
func (c *writeCodec) Bool(v *bool) error       { return WriteElement(c.w, *v) }
func (c *writeCodec) Uint8(v *uint8) error     { return WriteElement(c.w, *v) }
func (c *writeCodec) Uint16(v *uint16) error   { return WriteElement(c.w, *v) }
func (c *writeCodec) Uint32(v *uint32) error   { return WriteElement(c.w, *v) }
func (c *writeCodec) Uint64(v *uint64) error   { return WriteElement(c.w, *v) }
func (c *writeCodec) Int32(v *int32) error     { return WriteElement(c.w, *v) }
func (c *writeCodec) Int64(v *int64) error     { return WriteElement(c.w, *v) }
func (c *writeCodec) Float32(v *float32) error { return WriteElement(c.w, *v) }
func (c *writeCodec) Float64(v *float64) error { return WriteElement(c.w, *v) }
func (c *writeCodec) Blob(b []byte) error      { return WriteBlob(c.w, b) }

func (c *writeCodec) VarBytes(b *[]byte, maxSize uint64) error {
	return WriteVarBytes(c.w, *b, maxSize)
}

func (c *writeCodec) String(s *string, maxSize uint64) error {
	return WriteVarString(c.w, *s, maxSize)
}

func (c *writeCodec) CompactSize(v *uint64, maxSize uint64) error {
	return WriteCompactSize(c.w, *v, maxSize)
}

type readCodec struct {
	r    io.Reader
	pver uint32
}

func (c *readCodec) Reading() bool            { return true }
func (c *readCodec) Version() uint32          { return c.pver }
func (c *readCodec) Bool(v *bool) error       { return ReadElement(c.r, v) }
func (c *readCodec) Uint8(v *uint8) error     { return ReadElement(c.r, v) }
func (c *readCodec) Uint16(v *uint16) error   { return ReadElement(c.r, v) }
func (c *readCodec) Uint32(v *uint32) error   { return ReadElement(c.r, v) }
func (c *readCodec) Uint64(v *uint64) error   { return ReadElement(c.r, v) }
func (c *readCodec) Int32(v *int32) error     { return ReadElement(c.r, v) }
func (c *readCodec) Int64(v *int64) error     { return ReadElement(c.r, v) }
func (c *readCodec) Float32(v *float32) error { return ReadElement(c.r, v) }
func (c *readCodec) Float64(v *float64) error { return ReadElement(c.r, v) }
func (c *readCodec) Blob(b []byte) error      { return ReadBlob(c.r, b) }

func (c *readCodec) VarBytes(b *[]byte, maxSize uint64) error {
	v, err := ReadVarBytes(c.r, maxSize)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (c *readCodec) String(s *string, maxSize uint64) error {
	v, err := ReadVarString(c.r, maxSize)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (c *readCodec) CompactSize(v *uint64, maxSize uint64) error {
	n, err := ReadCompactSize(c.r, maxSize)
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// WalkSlice codes a CompactSize element count followed by each element
// in order. maxCount bounds the decoded count before the destination
// slice is allocated.
func WalkSlice[E any, PE interface {
	*E
	Walker
}](c Codec, items *[]E, maxCount uint64) error {
	n := uint64(len(*items))
	if err := c.CompactSize(&n, maxCount); err != nil {
		return err
	}
	if c.Reading() {
		*items = make([]E, n)
	}
	for i := range *items {
		if err := PE(&(*items)[i]).Walk(c); err != nil {
			return err
		}
	}
	return nil
}
