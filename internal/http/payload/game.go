package payload

import (
	"errors"
	"math/big"

	"github.com/jellydator/validation"
)

// RedeemRequest asks to exchange confirmed clicks for tokens. Amount is in
// clicks and must be a multiple of the contract's clicks-per-token rate; the
// rate check happens in the engine, divisibility aside the payload only
// guards the basics.
type RedeemRequest struct {
	Amount int64 `json:"amount"`
}

func (r RedeemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.Min(int64(1))),
	)
}

// FundRequest asks for a funding spec topping up the gas wallet.
type FundRequest struct {
	AmountWei string `json:"amountWei"`
}

func (f FundRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.AmountWei, validation.Required, validation.By(isPositiveWei)),
	)
}

// Amount parses the wei amount; Validate must pass first.
func (f FundRequest) Amount() *big.Int {
	amount, _ := new(big.Int).SetString(f.AmountWei, 10)
	return amount
}

// FundSubmittedRequest reports the hash of a funding transfer the primary
// wallet already sent.
type FundSubmittedRequest struct {
	RecordID string `json:"recordId"`
	Hash     string `json:"hash"`
}

func (f FundSubmittedRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.RecordID, validation.Required, validation.By(isUUID)),
		validation.Field(&f.Hash, validation.Required, validation.By(isHexBytes)),
	)
}

// VisibilityRequest reports the host page's visibility state.
type VisibilityRequest struct {
	Visible *bool `json:"visible"`
}

func (v VisibilityRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Visible, validation.NotNil),
	)
}

func isPositiveWei(value any) error {
	raw, _ := value.(string)
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return errors.New("must be a decimal integer")
	}
	if amount.Sign() <= 0 {
		return errors.New("must be positive")
	}
	return nil
}
