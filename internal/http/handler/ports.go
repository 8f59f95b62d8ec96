package handler

import (
	"context"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/core"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GameService . GameService
type GameService interface {
	Connect(ctx context.Context, primary common.Address, signer wallet.MessageSigner) (string, common.Address, error)
	ValidateSession(token string) (common.Address, error)
	Click(ctx context.Context) (string, error)
	Redeem(ctx context.Context, amount int64) (string, error)
	FundGasWallet(ctx context.Context, amountWei *big.Int) (core.FundingSpec, string, error)
	FundSubmitted(recordID string, hash common.Hash) error
	State() core.State
	History() []core.TxRecord
	SetVisible(visible bool)
	MarkActivity()
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
