package serial

import "errors"

// Error kinds reported by the codec layer. Callers match them with
// errors.Is; every failure is returned synchronously and a failed
// decode leaves the source in an unspecified state, so the caller must
// abandon the record it was reading rather than resume.
var (
	// ErrFormat marks a non-canonical or corrupt encoding, such as a
	// CompactSize value written with a longer prefix than required.
	ErrFormat = errors.New("non-canonical encoding")

	// ErrOverflow marks a decoded magnitude that exceeds the
	// destination type or the protocol cap.
	ErrOverflow = errors.New("value overflows destination")

	// ErrUnderflow marks a read past the end of the available bytes.
	ErrUnderflow = errors.New("unexpected end of data")

	// ErrOversize marks an encode request above the protocol maximum.
	// Nothing is written when it is returned.
	ErrOversize = errors.New("size above protocol maximum")
)
