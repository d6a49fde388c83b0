// Package testutil carries fixture helpers shared by the package
// tests and the verification CLI.
package testutil

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MustHex decodes a hex fixture, panicking on malformed test data.
func MustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// DoubleDigestHex returns the double-SHA256 digest of data as
// byte-reversed hex, the display convention the fixture digests use.
func DoubleDigestHex(data []byte) string {
	h := chainhash.DoubleHashH(data)
	return h.String()
}
