package serial

import "io"

// countWriter is the null destination behind size estimation: it
// accumulates the length of everything written and discards the bytes.
// Running the ordinary write dispatch against it guarantees the
// estimate and the real encoding can never diverge.
type countWriter struct {
	n int
}

func (c *countWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

func (c *countWriter) WriteByte(byte) error {
	c.n++
	return nil
}

// CountingWriter returns an io.Writer that discards its input and
// tallies the byte count retrievable through the returned func.
func CountingWriter() (io.Writer, func() int) {
	c := &countWriter{}
	return c, func() int { return c.n }
}

// SerializedSize returns the exact number of bytes writing the given
// values would produce, without performing I/O. Serializable values
// run their own walk; everything else goes through element dispatch.
// With no arguments the size is zero.
func SerializedSize(pver uint32, values ...any) (int, error) {
	var c countWriter
	for _, v := range values {
		var err error
		if s, ok := v.(Serializable); ok {
			err = s.Serialize(&c, pver)
		} else {
			err = WriteElement(&c, v)
		}
		if err != nil {
			return 0, err
		}
	}
	return c.n, nil
}
