package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const gameABI = `[
	{"type":"function","name":"click","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"redeem","inputs":[{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getScore","inputs":[{"name":"player","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getRedeemableTokens","inputs":[{"name":"player","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"clicksPerToken","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getContractBalance","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"event","name":"Click","inputs":[{"name":"player","type":"address","indexed":true},{"name":"newScore","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"Redeem","inputs":[{"name":"player","type":"address","indexed":true},{"name":"clicksSpent","type":"uint256","indexed":false},{"name":"tokens","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"ContractFunded","inputs":[{"name":"funder","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}],"anonymous":false}
]`

// Contract is the codec for the clicker game contract: call data packing,
// view-result unpacking and event log decoding.
type Contract struct {
	address common.Address
	abi     abi.ABI
}

func NewContract(address string) (*Contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address: %q", address)
	}
	parsed, err := abi.JSON(strings.NewReader(gameABI))
	if err != nil {
		return nil, fmt.Errorf("parse game abi: %w", err)
	}
	return &Contract{
		address: common.HexToAddress(address),
		abi:     parsed,
	}, nil
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) PackClick() ([]byte, error) {
	data, err := c.abi.Pack("click")
	if err != nil {
		return nil, fmt.Errorf("pack click: %w", err)
	}
	return data, nil
}

func (c *Contract) PackRedeem(amount *big.Int) ([]byte, error) {
	data, err := c.abi.Pack("redeem", amount)
	if err != nil {
		return nil, fmt.Errorf("pack redeem: %w", err)
	}
	return data, nil
}

func (c *Contract) PackGetScore(player common.Address) ([]byte, error) {
	data, err := c.abi.Pack("getScore", player)
	if err != nil {
		return nil, fmt.Errorf("pack getScore: %w", err)
	}
	return data, nil
}

func (c *Contract) PackGetRedeemableTokens(player common.Address) ([]byte, error) {
	data, err := c.abi.Pack("getRedeemableTokens", player)
	if err != nil {
		return nil, fmt.Errorf("pack getRedeemableTokens: %w", err)
	}
	return data, nil
}

func (c *Contract) PackClicksPerToken() ([]byte, error) {
	data, err := c.abi.Pack("clicksPerToken")
	if err != nil {
		return nil, fmt.Errorf("pack clicksPerToken: %w", err)
	}
	return data, nil
}

func (c *Contract) PackGetContractBalance() ([]byte, error) {
	data, err := c.abi.Pack("getContractBalance")
	if err != nil {
		return nil, fmt.Errorf("pack getContractBalance: %w", err)
	}
	return data, nil
}

// UnpackUint256 decodes the single uint256 result every view function of the
// game contract returns.
func (c *Contract) UnpackUint256(method string, output []byte) (*big.Int, error) {
	results, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unpack %s: expected one output, got %d", method, len(results))
	}
	value, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: output is not uint256", method)
	}
	return value, nil
}

func (c *Contract) ClickTopic() common.Hash {
	return c.abi.Events["Click"].ID
}

func (c *Contract) RedeemTopic() common.Hash {
	return c.abi.Events["Redeem"].ID
}

func (c *Contract) ContractFundedTopic() common.Hash {
	return c.abi.Events["ContractFunded"].ID
}

// ParseEvent decodes one contract log into a typed game event. Logs emitted by
// other contracts or with unknown topics return ErrUnknownEvent.
func (c *Contract) ParseEvent(entry types.Log) (GameEvent, error) {
	if len(entry.Topics) == 0 {
		return GameEvent{}, ErrUnknownEvent
	}

	event := GameEvent{
		TxHash:      entry.TxHash,
		BlockNumber: entry.BlockNumber,
	}

	switch entry.Topics[0] {
	case c.ClickTopic():
		event.Kind = EventClick
		event.Player = topicAddress(entry.Topics)
		values, err := c.abi.Unpack("Click", entry.Data)
		if err != nil {
			return GameEvent{}, fmt.Errorf("unpack Click event: %w", err)
		}
		event.Value = values[0].(*big.Int)
	case c.RedeemTopic():
		event.Kind = EventRedeem
		event.Player = topicAddress(entry.Topics)
		values, err := c.abi.Unpack("Redeem", entry.Data)
		if err != nil {
			return GameEvent{}, fmt.Errorf("unpack Redeem event: %w", err)
		}
		event.Value = values[0].(*big.Int)
		event.Tokens = values[1].(*big.Int)
	case c.ContractFundedTopic():
		event.Kind = EventContractFunded
		event.Player = topicAddress(entry.Topics)
		values, err := c.abi.Unpack("ContractFunded", entry.Data)
		if err != nil {
			return GameEvent{}, fmt.Errorf("unpack ContractFunded event: %w", err)
		}
		event.Value = values[0].(*big.Int)
	default:
		return GameEvent{}, ErrUnknownEvent
	}

	return event, nil
}

func topicAddress(topics []common.Hash) common.Address {
	if len(topics) < 2 {
		return common.Address{}
	}
	return common.BytesToAddress(topics[1].Bytes())
}
