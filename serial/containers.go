package serial

import (
	"io"
	"slices"

	"golang.org/x/exp/constraints"
)

// Container encodings all share one shape: a CompactSize element count
// followed by the elements in order. Element codecs are passed as
// functions so the same helpers serve every payload type in the
// closed vocabulary. Map and set output is sorted by key to keep the
// encoding deterministic regardless of Go's randomized map iteration;
// on read the destination is rebuilt by insertion, so duplicate
// handling follows the target container's own semantics.

// WriteSlice writes items with enc after a CompactSize count.
func WriteSlice[T any](w io.Writer, items []T, maxCount uint64, enc func(io.Writer, T) error) error {
	if err := WriteCompactSize(w, uint64(len(items)), maxCount); err != nil {
		return err
	}
	for _, item := range items {
		if err := enc(w, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadSlice reads a CompactSize count and then count elements.
func ReadSlice[T any](r io.Reader, maxCount uint64, dec func(io.Reader) (T, error)) ([]T, error) {
	n, err := ReadCompactSize(r, maxCount)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		item, err := dec(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteMap writes m as a CompactSize entry count followed by key/value
// pairs in ascending key order.
func WriteMap[K constraints.Ordered, V any](w io.Writer, m map[K]V, maxCount uint64,
	encK func(io.Writer, K) error, encV func(io.Writer, V) error) error {

	if err := WriteCompactSize(w, uint64(len(m)), maxCount); err != nil {
		return err
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := encK(w, k); err != nil {
			return err
		}
		if err := encV(w, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap rebuilds a map by inserting each decoded key/value pair.
func ReadMap[K comparable, V any](r io.Reader, maxCount uint64,
	decK func(io.Reader) (K, error), decV func(io.Reader) (V, error)) (map[K]V, error) {

	n, err := ReadCompactSize(r, maxCount)
	if err != nil {
		return nil, err
	}
	m := make(map[K]V, n)
	for i := uint64(0); i < n; i++ {
		k, err := decK(r)
		if err != nil {
			return nil, err
		}
		v, err := decV(r)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// WriteSet writes s as a CompactSize count followed by the elements in
// ascending order.
func WriteSet[T constraints.Ordered](w io.Writer, s map[T]struct{}, maxCount uint64,
	enc func(io.Writer, T) error) error {

	if err := WriteCompactSize(w, uint64(len(s)), maxCount); err != nil {
		return err
	}
	elems := make([]T, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	slices.Sort(elems)
	for _, e := range elems {
		if err := enc(w, e); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet rebuilds a set by inserting each decoded element.
func ReadSet[T comparable](r io.Reader, maxCount uint64, dec func(io.Reader) (T, error)) (map[T]struct{}, error) {
	n, err := ReadCompactSize(r, maxCount)
	if err != nil {
		return nil, err
	}
	s := make(map[T]struct{}, n)
	for i := uint64(0); i < n; i++ {
		e, err := dec(r)
		if err != nil {
			return nil, err
		}
		s[e] = struct{}{}
	}
	return s, nil
}

// WriteOption writes one presence byte, then the payload only when v
// is non-nil.
func WriteOption[T any](w io.Writer, v *T, enc func(io.Writer, T) error) error {
	if v == nil {
		return WriteElement(w, false)
	}
	if err := WriteElement(w, true); err != nil {
		return err
	}
	return enc(w, *v)
}

// ReadOption reads the presence byte and decodes the payload only when
// it is set; absent values decode to nil.
func ReadOption[T any](r io.Reader, dec func(io.Reader) (T, error)) (*T, error) {
	var present bool
	if err := ReadElement(r, &present); err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := dec(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
