package store

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Key prefixes. One byte per record family keeps families in disjoint,
// prefix-scannable ranges.
const (
	kTx      = 0x01
	kBlockTx = 0x02
	kInv     = 0x03
)

// KeyTx keys a transaction by its hash.
func KeyTx(txid chainhash.Hash) []byte {
	k := make([]byte, 1+chainhash.HashSize)
	k[0] = kTx
	copy(k[1:], txid[:])
	return k
}

// KeyBlockTx keys a transaction by block hash and position, big-endian
// so lexicographic key order equals position order.
func KeyBlockTx(blockHash chainhash.Hash, pos uint32) []byte {
	k := make([]byte, 1+chainhash.HashSize+4)
	k[0] = kBlockTx
	copy(k[1:1+chainhash.HashSize], blockHash[:])
	binary.BigEndian.PutUint32(k[1+chainhash.HashSize:], pos)
	return k
}

// BoundsBlockTx returns the half-open key range covering every
// position under blockHash.
func BoundsBlockTx(blockHash chainhash.Hash) (lb, ub []byte) {
	lb = KeyBlockTx(blockHash, 0)
	ub = KeyBlockTx(blockHash, 0xffffffff)
	return
}

// KeyInv keys an inventory vector by type and hash.
func KeyInv(invType uint32, hash chainhash.Hash) []byte {
	k := make([]byte, 1+4+chainhash.HashSize)
	k[0] = kInv
	binary.BigEndian.PutUint32(k[1:5], invType)
	copy(k[5:], hash[:])
	return k
}
