package core

import (
	"math/big"
	"time"
)

type TxKind string

const (
	KindClick  TxKind = "click"
	KindRedeem TxKind = "redeem"
	KindFund   TxKind = "fund"
)

type TxStatus string

const (
	StatusPending   TxStatus = "pending"
	StatusConfirmed TxStatus = "confirmed"
	StatusFailed    TxStatus = "failed"
)

// TxRecord maps one user intent onto eventual ledger state. Status only moves
// forward: pending to confirmed or failed.
type TxRecord struct {
	ID        string    `json:"id"`
	Kind      TxKind    `json:"kind"`
	Status    TxStatus  `json:"status"`
	Hash      string    `json:"hash,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// kind-specific payload
	Points int64  `json:"points,omitempty"` // click: +1, redeem: clicks spent (negative)
	Tokens int64  `json:"tokens,omitempty"` // redeem only
	Amount string `json:"amount,omitempty"` // fund only, wei
}

// State is the read model the UI renders from.
type State struct {
	Connected        bool   `json:"connected"`
	PrimaryWallet    string `json:"primaryWallet,omitempty"`
	GasWallet        string `json:"gasWallet,omitempty"`
	ConfirmedScore   int64  `json:"confirmedScore"`
	PendingClicks    int64  `json:"pendingClicks"`
	DisplayedScore   int64  `json:"displayedScore"`
	RedeemableTokens int64  `json:"redeemableTokens"`
	ClicksPerToken   int64  `json:"clicksPerToken"`
	GasBalanceWei    string `json:"gasBalanceWei"`
	PendingTxs       int    `json:"pendingTxs"`
	TxQueueLength    int    `json:"txQueueLength"`
	InfoQueueLength  int    `json:"infoQueueLength"`
	Processing       int    `json:"processing"`
	NetworkStatus    string `json:"networkStatus"`
}

// FundingSpec is handed back to the UI for the primary wallet to send; the
// engine never holds the primary key.
type FundingSpec struct {
	To       string `json:"to"`
	ValueWei string `json:"valueWei"`
	GasLimit uint64 `json:"gasLimit"`
}

func weiString(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}
