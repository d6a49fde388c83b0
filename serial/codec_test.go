package serial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testAggregate mirrors a typical compound record: a handful of mixed
// fields declared as one walk shared by both directions.
type testAggregate struct {
	IntVal    int32
	BoolVal   bool
	StringVal string
	Tag       [8]byte
	Payload   []byte
}

func (a *testAggregate) Walk(c Codec) error {
	if err := c.Int32(&a.IntVal); err != nil {
		return err
	}
	if err := c.Bool(&a.BoolVal); err != nil {
		return err
	}
	if err := c.String(&a.StringVal, DefaultMaxSize); err != nil {
		return err
	}
	if err := c.Blob(a.Tag[:]); err != nil {
		return err
	}
	return c.VarBytes(&a.Payload, DefaultMaxSize)
}

func TestCodecAggregateRoundTrip(t *testing.T) {
	value := testAggregate{
		IntVal:    100,
		BoolVal:   true,
		StringVal: "testing",
		Tag:       [8]byte{'c', 'h', 'a', 'r', 's', 't', 'r', 0},
		Payload:   []byte{1, 2, 3, 4},
	}

	var s Stream
	require.NoError(t, value.Walk(NewWriteCodec(&s, 0)))

	var decoded testAggregate
	require.NoError(t, decoded.Walk(NewReadCodec(&s, 0)))
	require.Equal(t, value, decoded)
	require.Equal(t, 0, s.Len())
}

func TestCodecSizeSharesWalk(t *testing.T) {
	value := testAggregate{
		IntVal:    -1,
		StringVal: "size check",
		Payload:   make([]byte, 300),
	}

	w, size := CountingWriter()
	require.NoError(t, value.Walk(NewWriteCodec(w, 0)))

	var s Stream
	require.NoError(t, value.Walk(NewWriteCodec(&s, 0)))
	require.Equal(t, s.Len(), size())
}

func TestWalkSliceRoundTrip(t *testing.T) {
	items := []testAggregate{
		{IntVal: 1, StringVal: "Entry1", Payload: []byte{1}},
		{IntVal: 2, StringVal: "Entry2", Payload: []byte{2}},
		{IntVal: 3, StringVal: "Entry3", Payload: []byte{3}},
	}

	var s Stream
	require.NoError(t, WalkSlice(NewWriteCodec(&s, 0), &items, DefaultMaxSize))

	var decoded []testAggregate
	require.NoError(t, WalkSlice(NewReadCodec(&s, 0), &decoded, DefaultMaxSize))
	require.Equal(t, items, decoded)
}

func TestCodecVersionOpaque(t *testing.T) {
	// The protocol version must thread through without changing any
	// byte of the encoding.
	value := testAggregate{IntVal: 9, StringVal: "v", Payload: []byte{0}}

	var a, b Stream
	require.NoError(t, value.Walk(NewWriteCodec(&a, 0)))
	require.NoError(t, value.Walk(NewWriteCodec(&b, 70016)))
	require.Equal(t, a.Bytes(), b.Bytes())

	require.Equal(t, uint32(70016), NewWriteCodec(&b, 70016).Version())
	require.True(t, NewReadCodec(&b, 0).Reading())
}
