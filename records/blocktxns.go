package records

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/muoyuongwei/CED-RA/serial"
)

// BlockTransactions is the batch of transactions answering a
// compact-block request: the block they belong to plus the requested
// transactions in request order.
type BlockTransactions struct {
	BlockHash    chainhash.Hash
	Transactions []Transaction
}

func (b *BlockTransactions) Walk(c serial.Codec) error {
	if err := c.Blob(b.BlockHash[:]); err != nil {
		return err
	}
	return serial.WalkSlice(c, &b.Transactions, MaxTxPerList)
}

func (b *BlockTransactions) Serialize(w io.Writer, pver uint32) error {
	return b.Walk(serial.NewWriteCodec(w, pver))
}

func (b *BlockTransactions) Deserialize(r io.Reader, pver uint32) error {
	return b.Walk(serial.NewReadCodec(r, pver))
}

// SerializeSize returns the exact encoded length of the batch.
func (b *BlockTransactions) SerializeSize(pver uint32) int {
	return walkSize(b, pver)
}
