package records

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/muoyuongwei/CED-RA/serial"
)

func TestBlockTransactionsSerializeSize(t *testing.T) {
	var btxs BlockTransactions
	require.Equal(t, 33, btxs.SerializeSize(0))

	btxs.Transactions = make([]Transaction, 1)
	require.Equal(t, 43, btxs.SerializeSize(0))

	btxs.Transactions = make([]Transaction, 0xfd)
	require.Equal(t, 2565, btxs.SerializeSize(0))
}

func TestBlockTransactionsRoundTrip(t *testing.T) {
	btxs := BlockTransactions{
		BlockHash: chainhash.Hash{0x11, 0x22},
		Transactions: []Transaction{
			*sampleTransaction(),
			*sampleTransaction(),
		},
	}

	var s serial.Stream
	require.NoError(t, btxs.Serialize(&s, 0))
	require.Equal(t, btxs.SerializeSize(0), s.Len())

	var decoded BlockTransactions
	require.NoError(t, decoded.Deserialize(&s, 0))
	require.Equal(t, btxs, decoded)
}
