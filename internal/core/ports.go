package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"

	sessions "github.com/nicomenzi/cookie-clicker-2-sub000/pkg/jwt"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Ledger is the read surface the engine uses for views, logs and receipts.
//
//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Dispatcher admits network operations under the shared rate budget.
//
//counterfeiter:generate -o fake -fake-name Dispatcher . Dispatcher
type Dispatcher interface {
	Fetch(ctx context.Context, opts scheduler.FetchOptions, op scheduler.Operation) (any, error)
	Transact(ctx context.Context, opts scheduler.TransactOptions, op scheduler.Operation) (any, error)
}

// TxSender submits writes from the gas wallet.
//
//counterfeiter:generate -o fake -fake-name TxSender . TxSender
type TxSender interface {
	Address() common.Address
	Balance(ctx context.Context) (*big.Int, error)
	RefreshNonce(ctx context.Context) error
	Send(ctx context.Context, spec sender.TxSpec) (common.Hash, error)
	Pending() int
	Stop()
}

// SenderFactory builds a TxSender for a freshly derived gas wallet; one is
// created per primary-wallet connection.
type SenderFactory func(gasWallet *wallet.GasWallet) TxSender

// SchedulerControl exposes the scheduler's queue state and visibility gate.
//
//counterfeiter:generate -o fake -fake-name SchedulerControl . SchedulerControl
type SchedulerControl interface {
	SetVisible(visible bool)
	QueueLengths() (int, int)
	Processing() int
	Status() string
}

// SessionIssuer issues and validates game session tokens.
//
//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Generate(data sessions.SessionInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
