package records

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/muoyuongwei/CED-RA/serial"
)

// InvType designates what an inventory vector announces.
type InvType uint32

const (
	InvTypeError InvType = 0
	InvTypeTx    InvType = 1
	InvTypeBlock InvType = 2
)

// InvVectSize is the fixed encoded length of an inventory vector.
const InvVectSize = 4 + chainhash.HashSize

// InvVect announces the existence of an object by type and hash.
type InvVect struct {
	Type InvType
	Hash chainhash.Hash
}

func (v *InvVect) Walk(c serial.Codec) error {
	t := uint32(v.Type)
	if err := c.Uint32(&t); err != nil {
		return err
	}
	v.Type = InvType(t)
	return c.Blob(v.Hash[:])
}

func (v *InvVect) Serialize(w io.Writer, pver uint32) error {
	return v.Walk(serial.NewWriteCodec(w, pver))
}

func (v *InvVect) Deserialize(r io.Reader, pver uint32) error {
	return v.Walk(serial.NewReadCodec(r, pver))
}

// SerializeSize returns InvVectSize for any inventory vector.
func (v *InvVect) SerializeSize(pver uint32) int {
	return walkSize(v, pver)
}
