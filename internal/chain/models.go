package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type EventKind int

const (
	EventClick EventKind = iota
	EventRedeem
	EventContractFunded
)

// GameEvent is one decoded contract log entry.
type GameEvent struct {
	Kind        EventKind
	Player      common.Address
	Value       *big.Int // new score for clicks, clicks spent for redeems, wei for funding
	Tokens      *big.Int // redeems only
	TxHash      common.Hash
	BlockNumber uint64
}
