package sender

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxSpec describes one write the sender should submit from the gas wallet.
type TxSpec struct {
	To       common.Address
	Value    *big.Int
	Data     []byte
	GasLimit uint64
	// Front places the submission ahead of queued transactions (redeems).
	Front bool
	// OnResult fires once the confirmation watcher settles the transaction.
	OnResult Callback
}

// Result is delivered by the confirmation watcher. Receipt is set when the
// ledger included the transaction (check Receipt.Status for revert); Err is
// set when watching itself failed.
type Result struct {
	Hash    common.Hash
	Receipt *types.Receipt
	Err     error
}

type Callback func(Result)
