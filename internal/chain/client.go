package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Client multiplexes one or more RPC endpoints behind the RPCClient interface.
// All calls go to the active endpoint; Switch rotates to the next one, which
// the scheduler does when the active endpoint starts throttling us.
type Client struct {
	mu        sync.RWMutex
	endpoints []RPCClient
	active    int
}

func NewClient(endpoints ...RPCClient) (*Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("at least one rpc endpoint is required")
	}
	return &Client{endpoints: endpoints}, nil
}

// Switch rotates to the next configured endpoint and reports whether an
// alternate actually exists.
func (c *Client) Switch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.endpoints) < 2 {
		return false
	}
	c.active = (c.active + 1) % len(c.endpoints)
	return true
}

// Endpoints returns the number of configured endpoints.
func (c *Client) Endpoints() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.endpoints)
}

func (c *Client) current() RPCClient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoints[c.active]
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return c.current().BalanceAt(ctx, account, blockNumber)
}

func (c *Client) NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error) {
	return c.current().NonceAt(ctx, account, blockNumber)
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return c.current().PendingNonceAt(ctx, account)
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return c.current().SuggestGasPrice(ctx)
}

func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return c.current().EstimateGas(ctx, msg)
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.current().SendTransaction(ctx, tx)
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.current().TransactionReceipt(ctx, txHash)
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.current().CallContract(ctx, msg, blockNumber)
}

func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	return c.current().FilterLogs(ctx, q)
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.current().BlockNumber(ctx)
}
