// Package records holds the compound record types carried over the
// wire and in storage: transactions, inventory items and
// block-transaction batches. Each record declares its ordered field
// list exactly once as a codec walk; serialization, deserialization
// and size estimation all traverse that walk, so the byte layout
// cannot drift between directions.
package records

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/muoyuongwei/CED-RA/serial"
)

// Caps applied when decoding untrusted input. Scripts and
// input/output lists share the conventional protocol maximum.
const (
	MaxScriptSize = serial.DefaultMaxSize
	MaxTxPerList  = serial.DefaultMaxSize
)

// OutPoint identifies a transaction output by the transaction hash and
// the output index within it.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

func (o *OutPoint) Walk(c serial.Codec) error {
	if err := c.Blob(o.Hash[:]); err != nil {
		return err
	}
	return c.Uint32(&o.Index)
}

func (o *OutPoint) Serialize(w io.Writer, pver uint32) error {
	return o.Walk(serial.NewWriteCodec(w, pver))
}

func (o *OutPoint) Deserialize(r io.Reader, pver uint32) error {
	return o.Walk(serial.NewReadCodec(r, pver))
}

// TxIn spends a previous output with an unlocking script.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

func (t *TxIn) Walk(c serial.Codec) error {
	if err := t.PreviousOutPoint.Walk(c); err != nil {
		return err
	}
	if err := c.VarBytes(&t.SignatureScript, MaxScriptSize); err != nil {
		return err
	}
	return c.Uint32(&t.Sequence)
}

func (t *TxIn) Serialize(w io.Writer, pver uint32) error {
	return t.Walk(serial.NewWriteCodec(w, pver))
}

func (t *TxIn) Deserialize(r io.Reader, pver uint32) error {
	return t.Walk(serial.NewReadCodec(r, pver))
}

// SerializeSize returns the exact encoded length of the input.
func (t *TxIn) SerializeSize(pver uint32) int {
	return walkSize(t, pver)
}

// TxOut locks a value behind a script.
type TxOut struct {
	Value    int64
	PkScript []byte
}

func (t *TxOut) Walk(c serial.Codec) error {
	if err := c.Int64(&t.Value); err != nil {
		return err
	}
	return c.VarBytes(&t.PkScript, MaxScriptSize)
}

func (t *TxOut) Serialize(w io.Writer, pver uint32) error {
	return t.Walk(serial.NewWriteCodec(w, pver))
}

func (t *TxOut) Deserialize(r io.Reader, pver uint32) error {
	return t.Walk(serial.NewReadCodec(r, pver))
}

// SerializeSize returns the exact encoded length of the output.
func (t *TxOut) SerializeSize(pver uint32) int {
	return walkSize(t, pver)
}

// Transaction is the canonical transaction encoding: version, inputs,
// outputs, lock time.
type Transaction struct {
	Version  int32
	TxIn     []TxIn
	TxOut    []TxOut
	LockTime uint32
}

func (t *Transaction) Walk(c serial.Codec) error {
	if err := c.Int32(&t.Version); err != nil {
		return err
	}
	if err := serial.WalkSlice(c, &t.TxIn, MaxTxPerList); err != nil {
		return err
	}
	if err := serial.WalkSlice(c, &t.TxOut, MaxTxPerList); err != nil {
		return err
	}
	return c.Uint32(&t.LockTime)
}

func (t *Transaction) Serialize(w io.Writer, pver uint32) error {
	return t.Walk(serial.NewWriteCodec(w, pver))
}

func (t *Transaction) Deserialize(r io.Reader, pver uint32) error {
	return t.Walk(serial.NewReadCodec(r, pver))
}

// SerializeSize returns the exact encoded length of the transaction.
func (t *Transaction) SerializeSize(pver uint32) int {
	return walkSize(t, pver)
}

// Hash returns the double-SHA256 digest of the serialized transaction.
// Hashing itself is an external collaborator; the encoding fed to it
// is what this layer owns.
func (t *Transaction) Hash() chainhash.Hash {
	var s serial.Stream
	_ = t.Serialize(&s, 0)
	return chainhash.DoubleHashH(s.Bytes())
}

// walkSize runs a record's walk against a counting destination. The
// size path and the write path share the same dispatch, so a format
// change cannot silently diverge between them.
func walkSize(wk serial.Walker, pver uint32) int {
	w, size := serial.CountingWriter()
	_ = wk.Walk(serial.NewWriteCodec(w, pver))
	return size()
}
