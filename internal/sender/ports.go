package sender

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Ledger is the slice of the RPC surface the sender needs.
//
//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Dispatcher admits network operations under the shared rate budget.
//
//counterfeiter:generate -o fake -fake-name Dispatcher . Dispatcher
type Dispatcher interface {
	Fetch(ctx context.Context, opts scheduler.FetchOptions, op scheduler.Operation) (any, error)
	Transact(ctx context.Context, opts scheduler.TransactOptions, op scheduler.Operation) (any, error)
}
