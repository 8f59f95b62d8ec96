package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
)

// callView runs one read-only contract call under the informational budget,
// with the freshness cache consulted first.
func (c *Clicker) callView(ctx context.Context, dt freshcache.DataType, cacheKey string, method string, data []byte, priority scheduler.Priority) (*big.Int, error) {
	to := c.contract.Address()
	value, err := c.dispatch.Fetch(ctx, scheduler.FetchOptions{
		Priority:  priority,
		CacheType: dt,
		CacheKey:  cacheKey,
	}, func(ctx context.Context) (any, error) {
		output, err := c.ledger.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
		if err != nil {
			return nil, err
		}
		return c.contract.UnpackUint256(method, output)
	})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	result, ok := value.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("call %s: unexpected result type %T", method, value)
	}
	return result, nil
}

func (c *Clicker) fetchScore(ctx context.Context, primary common.Address, force bool) (int64, error) {
	key := primary.Hex()
	if force {
		c.cache.Clear(freshcache.Score, key)
	}
	data, err := c.contract.PackGetScore(primary)
	if err != nil {
		return 0, err
	}
	score, err := c.callView(ctx, freshcache.Score, key, "getScore", data, scheduler.PriorityHigh)
	if err != nil {
		return 0, err
	}
	return score.Int64(), nil
}

func (c *Clicker) fetchClicksPerToken(ctx context.Context) (int64, error) {
	data, err := c.contract.PackClicksPerToken()
	if err != nil {
		return 0, err
	}
	rate, err := c.callView(ctx, freshcache.ClicksPerToken, "global", "clicksPerToken", data, scheduler.PriorityHigh)
	if err != nil {
		return 0, err
	}
	return rate.Int64(), nil
}

func (c *Clicker) fetchRedeemableTokens(ctx context.Context, primary common.Address) (int64, error) {
	data, err := c.contract.PackGetRedeemableTokens(primary)
	if err != nil {
		return 0, err
	}
	// the contract reports whole tokens, no decimal scaling here
	tokens, err := c.callView(ctx, freshcache.RedeemableTokens, primary.Hex(), "getRedeemableTokens", data, scheduler.PriorityNormal)
	if err != nil {
		return 0, err
	}
	return tokens.Int64(), nil
}

func (c *Clicker) fetchContractBalance(ctx context.Context) (*big.Int, error) {
	data, err := c.contract.PackGetContractBalance()
	if err != nil {
		return nil, err
	}
	return c.callView(ctx, freshcache.ContractBalance, "global", "getContractBalance", data, scheduler.PriorityLow)
}

// refreshLoop polls ledger-derived state in the background, gated per data
// type by the freshness cache so a hidden page or an idle user costs nothing.
func (c *Clicker) refreshLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(refreshTick)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
		}

		c.mu.Lock()
		connected := c.connected
		primary := c.primary
		snd := c.sender
		c.mu.Unlock()
		if !connected {
			continue
		}

		if c.cache.ShouldRefresh(freshcache.Score, false) {
			if score, err := c.fetchScore(c.ctx, primary, false); err == nil {
				c.adoptConfirmedScore(score)
			} else if !errors.Is(err, scheduler.ErrStopped) {
				c.logs.Warnw("score refresh failed", "error", err)
			}
		}

		if c.cache.ShouldRefresh(freshcache.RedeemableTokens, false) {
			if _, err := c.fetchRedeemableTokens(c.ctx, primary); err != nil && !errors.Is(err, scheduler.ErrStopped) {
				c.logs.Warnw("redeemable tokens refresh failed", "error", err)
			}
		}

		if c.cache.ShouldRefresh(freshcache.GasBalance, false) {
			if balance, err := snd.Balance(c.ctx); err == nil {
				c.cache.Set(freshcache.GasBalance, snd.Address().Hex(), balance)
			} else if !errors.Is(err, scheduler.ErrStopped) {
				c.logs.Warnw("gas balance refresh failed", "error", err)
			}
		}

		if c.cache.ShouldRefresh(freshcache.History, false) {
			if err := c.Reconcile(c.ctx); err != nil && !errors.Is(err, scheduler.ErrStopped) {
				c.logs.Warnw("history reconcile failed", "error", err)
			}
		}
	}
}

// adoptConfirmedScore takes the ledger's view as authoritative.
func (c *Clicker) adoptConfirmedScore(score int64) {
	c.mu.Lock()
	c.confirmedScore = score
	c.mu.Unlock()
}

// State assembles the UI read model from local state and cached values only;
// it never touches the network.
func (c *Clicker) State() State {
	c.mu.Lock()
	state := State{
		Connected:      c.connected,
		ConfirmedScore: c.confirmedScore,
		PendingClicks:  c.pendingClicks,
		DisplayedScore: c.confirmedScore + c.pendingClicks,
		ClicksPerToken: c.clicksPerToken,
		GasBalanceWei:  "0",
	}
	var primary common.Address
	var snd TxSender
	if c.connected {
		primary = c.primary
		snd = c.sender
		state.PrimaryWallet = primary.Hex()
	}
	c.mu.Unlock()

	if snd != nil {
		state.GasWallet = snd.Address().Hex()
		state.PendingTxs = snd.Pending()
		if value, ok := c.cache.Get(freshcache.RedeemableTokens, primary.Hex()); ok {
			if tokens, ok := value.(*big.Int); ok {
				state.RedeemableTokens = tokens.Int64()
			}
		}
		if value, ok := c.cache.Get(freshcache.GasBalance, snd.Address().Hex()); ok {
			if balance, ok := value.(*big.Int); ok {
				state.GasBalanceWei = balance.String()
			}
		}
	}

	if c.sched != nil {
		state.TxQueueLength, state.InfoQueueLength = c.sched.QueueLengths()
		state.Processing = c.sched.Processing()
		state.NetworkStatus = c.sched.Status()
	}

	return state
}

// SetVisible relays the host page's visibility to the scheduler and the
// cache so background polling stops while nobody is looking.
func (c *Clicker) SetVisible(visible bool) {
	if c.sched != nil {
		c.sched.SetVisible(visible)
	}
	c.cache.SetVisible(visible)
}

// MarkActivity records a user interaction for the freshness policy.
func (c *Clicker) MarkActivity() {
	c.cache.MarkActivity()
}

// History returns the visible transaction records, newest first.
func (c *Clicker) History() []TxRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]TxRecord, 0, len(c.order))
	for i := len(c.order) - 1; i >= 0; i-- {
		if record, ok := c.records[c.order[i]]; ok {
			out = append(out, *record)
		}
	}
	return out
}

// addRecordLocked appends a record and evicts the oldest settled entries
// beyond the history cap. Pending records are never evicted so their
// optimistic contribution can always be rolled back.
func (c *Clicker) addRecordLocked(record *TxRecord) {
	c.records[record.ID] = record
	c.order = append(c.order, record.ID)

	for len(c.order) > c.cfg.HistoryCap {
		evicted := false
		for i, id := range c.order {
			if rec, ok := c.records[id]; ok && rec.Status == StatusPending {
				continue
			} else {
				delete(c.records, id)
				c.order = append(c.order[:i], c.order[i+1:]...)
				evicted = true
				break
			}
		}
		if !evicted {
			break
		}
	}
}

func displayCause(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, sender.ErrNoGas) {
		return fundGasWalletHint
	}
	msg := err.Error()
	if len(msg) > causeMaxLen {
		cut := causeMaxLen
		// back off to a rune boundary so provider error text never turns
		// into mojibake
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut] + "..."
	}
	return msg
}
