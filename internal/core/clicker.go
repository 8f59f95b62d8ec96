package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	sessions "github.com/nicomenzi/cookie-clicker-2-sub000/pkg/jwt"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/sender"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

var ErrNotConnected error = errors.New("no wallet connected")
var ErrAlreadyConnected error = errors.New("a wallet is already connected")
var ErrInvalidAmount error = errors.New("redeem amount must be a positive integer")
var ErrNotMultiple error = errors.New("redeem amount must be a multiple of the clicks-per-token rate")
var ErrInsufficientScore error = errors.New("redeem amount exceeds confirmed score")
var ErrUnknownRecord error = errors.New("unknown transaction record")

const fundGasWalletHint = "insufficient balance - fund your gas wallet"

const (
	refreshTick       = 5 * time.Second
	sessionLifetime   = 12 * time.Hour
	historyLookback   = 50_000 // blocks scanned for event history
	stalePendingAfter = 10 * time.Minute
	causeMaxLen       = 120
	fundingPollEvery  = 3 * time.Second
	transferGasLimit  = 21_000
)

// Config tunes the engine.
type Config struct {
	HistoryCap int
	MaxPending int
}

// Clicker is the optimistic state engine: it owns the gap between "user
// clicked" and "ledger confirmed". Confirmed score is authoritative from the
// ledger; pending clicks are derived from outstanding records; the UI
// displays their sum.
type Clicker struct {
	logs      *zap.SugaredLogger
	ledger    Ledger
	dispatch  Dispatcher
	sched     SchedulerControl
	cache     *freshcache.Cache
	contract  *chain.Contract
	session   SessionIssuer
	newSender SenderFactory
	cfg       Config

	mu             sync.Mutex
	connected      bool
	primary        common.Address
	sender         TxSender
	confirmedScore int64
	pendingClicks  int64
	clicksPerToken int64
	records        map[string]*TxRecord
	order          []string // record IDs, creation order

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time
}

func NewClicker(
	logger *zap.SugaredLogger,
	ledger Ledger,
	dispatch Dispatcher,
	sched SchedulerControl,
	cache *freshcache.Cache,
	contract *chain.Contract,
	session SessionIssuer,
	senderFactory SenderFactory,
	cfg Config,
) *Clicker {
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = 50
	}
	if cfg.MaxPending <= 0 {
		cfg.MaxPending = 10
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Clicker{
		logs:      logger,
		ledger:    ledger,
		dispatch:  dispatch,
		sched:     sched,
		cache:     cache,
		contract:  contract,
		session:   session,
		newSender: senderFactory,
		cfg:       cfg,
		records:   make(map[string]*TxRecord),
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
	}
}

// Run starts the background refresh loop. Stop shuts it and all in-flight
// submissions down.
func (c *Clicker) Run() {
	c.wg.Add(1)
	go c.refreshLoop()
}

func (c *Clicker) Stop() {
	c.cancel()
	c.wg.Wait()

	c.mu.Lock()
	snd := c.sender
	c.mu.Unlock()
	if snd != nil {
		snd.Stop()
	}
}

// Connect derives the gas wallet from one primary-wallet signature, baselines
// its nonce, loads the contract parameters and issues a session token.
func (c *Clicker) Connect(ctx context.Context, primary common.Address, signer wallet.MessageSigner) (string, common.Address, error) {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return "", common.Address{}, ErrAlreadyConnected
	}
	c.mu.Unlock()

	gasWallet, err := wallet.Derive(ctx, primary, signer)
	if err != nil {
		return "", common.Address{}, err
	}

	snd := c.newSender(gasWallet)
	if err := snd.RefreshNonce(ctx); err != nil {
		snd.Stop()
		return "", common.Address{}, fmt.Errorf("baseline nonce: %w", err)
	}

	rate, err := c.fetchClicksPerToken(ctx)
	if err != nil {
		snd.Stop()
		return "", common.Address{}, err
	}

	score, err := c.fetchScore(ctx, primary, true)
	if err != nil {
		snd.Stop()
		return "", common.Address{}, err
	}

	token := c.session.Generate(sessions.SessionInfo{
		Subject:    primary.Hex(),
		GasWallet:  gasWallet.Address().Hex(),
		Expiration: sessionLifetime,
	})
	signed, err := c.session.Sign(token)
	if err != nil {
		snd.Stop()
		return "", common.Address{}, fmt.Errorf("sign session token: %w", err)
	}

	c.mu.Lock()
	c.connected = true
	c.primary = primary
	c.sender = snd
	c.confirmedScore = score
	c.pendingClicks = 0
	c.clicksPerToken = rate
	c.mu.Unlock()

	c.logs.Infow("wallet connected",
		"primary", primary.Hex(),
		"gas_wallet", gasWallet.Address().Hex(),
		"confirmed_score", score,
		"clicks_per_token", rate)

	return signed, gasWallet.Address(), nil
}

// ValidateSession checks a session token and returns the primary address it
// was issued for.
func (c *Clicker) ValidateSession(token string) (common.Address, error) {
	claims, err := c.session.Validate(token)
	if err != nil {
		return common.Address{}, err
	}
	subject, _ := claims["sub"].(string)
	if !common.IsHexAddress(subject) {
		return common.Address{}, errors.New("session token has no wallet subject")
	}
	return common.HexToAddress(subject), nil
}

// Click records one click optimistically and queues its submission. The
// displayed score moves before any network traffic happens.
func (c *Clicker) Click(ctx context.Context) (string, error) {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return "", ErrNotConnected
	}
	if c.sender.Pending() >= c.cfg.MaxPending {
		c.mu.Unlock()
		return "", sender.ErrTooManyPending
	}

	record := &TxRecord{
		ID:        uuid.New().String(),
		Kind:      KindClick,
		Status:    StatusPending,
		CreatedAt: c.now(),
		Points:    1,
	}
	c.addRecordLocked(record)
	c.pendingClicks++
	c.mu.Unlock()

	c.cache.MarkActivity()

	c.wg.Add(1)
	go c.submitClick(record.ID)

	return record.ID, nil
}

func (c *Clicker) submitClick(recordID string) {
	defer c.wg.Done()

	data, err := c.contract.PackClick()
	if err != nil {
		c.failClick(recordID, err)
		return
	}

	hash, err := c.sender.Send(c.ctx, sender.TxSpec{
		To:   c.contract.Address(),
		Data: data,
		OnResult: func(res sender.Result) {
			c.onClickResult(recordID, res)
		},
	})
	if err != nil {
		c.failClick(recordID, err)
		return
	}

	c.mu.Lock()
	if record, ok := c.records[recordID]; ok {
		record.Hash = hash.Hex()
	}
	c.mu.Unlock()
}

func (c *Clicker) onClickResult(recordID string, res sender.Result) {
	if res.Err != nil {
		c.failClick(recordID, res.Err)
		return
	}
	if res.Receipt == nil || res.Receipt.Status != types.ReceiptStatusSuccessful {
		c.failClick(recordID, errors.New("transaction reverted"))
		return
	}

	c.mu.Lock()
	record, ok := c.records[recordID]
	if !ok || record.Status != StatusPending {
		c.mu.Unlock()
		return
	}
	record.Status = StatusConfirmed
	record.Hash = res.Hash.Hex()
	c.confirmedScore++
	c.pendingClicks--
	score := c.confirmedScore
	primary := c.primary
	c.mu.Unlock()

	c.cache.Set(freshcache.Score, primary.Hex(), big.NewInt(score))
	c.logs.Infow("click confirmed", "record", recordID, "hash", res.Hash.Hex(), "confirmed_score", score)
}

// failClick rolls back the optimistic increment and finalizes the record with
// a short, display-ready cause.
func (c *Clicker) failClick(recordID string, cause error) {
	c.mu.Lock()
	record, ok := c.records[recordID]
	if !ok || record.Status != StatusPending {
		c.mu.Unlock()
		return
	}
	record.Status = StatusFailed
	record.Error = displayCause(cause)
	c.pendingClicks--
	c.mu.Unlock()

	c.logs.Warnw("click failed", "record", recordID, "error", cause)
}

// Redeem exchanges confirmed clicks for tokens. Validation runs against the
// confirmed score only: pending clicks might still fail and must not back a
// redemption. The submission jumps the transactional queue.
func (c *Clicker) Redeem(ctx context.Context, amount int64) (string, error) {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return "", ErrNotConnected
	}
	rate := c.clicksPerToken
	if amount <= 0 {
		c.mu.Unlock()
		return "", ErrInvalidAmount
	}
	if rate <= 0 || amount%rate != 0 {
		c.mu.Unlock()
		return "", ErrNotMultiple
	}
	if amount > c.confirmedScore {
		c.mu.Unlock()
		return "", ErrInsufficientScore
	}

	record := &TxRecord{
		ID:        uuid.New().String(),
		Kind:      KindRedeem,
		Status:    StatusPending,
		CreatedAt: c.now(),
		Points:    -amount,
		Tokens:    amount / rate,
	}
	c.addRecordLocked(record)
	c.mu.Unlock()

	c.cache.MarkActivity()

	// the next score/balance reads must not serve pre-redeem values
	c.cache.ClearType(freshcache.Score)
	c.cache.ClearType(freshcache.RedeemableTokens)
	c.cache.ClearType(freshcache.GasBalance)

	c.wg.Add(1)
	go c.submitRedeem(record.ID, amount)

	return record.ID, nil
}

func (c *Clicker) submitRedeem(recordID string, amount int64) {
	defer c.wg.Done()

	data, err := c.contract.PackRedeem(big.NewInt(amount))
	if err != nil {
		c.failRecord(recordID, err)
		return
	}

	hash, err := c.sender.Send(c.ctx, sender.TxSpec{
		To:    c.contract.Address(),
		Data:  data,
		Front: true,
		OnResult: func(res sender.Result) {
			c.onRedeemResult(recordID, amount, res)
		},
	})
	if err != nil {
		c.failRecord(recordID, err)
		return
	}

	c.mu.Lock()
	if record, ok := c.records[recordID]; ok {
		record.Hash = hash.Hex()
	}
	c.mu.Unlock()
}

func (c *Clicker) onRedeemResult(recordID string, amount int64, res sender.Result) {
	if res.Err != nil {
		c.failRecord(recordID, res.Err)
		return
	}
	if res.Receipt == nil || res.Receipt.Status != types.ReceiptStatusSuccessful {
		c.failRecord(recordID, errors.New("transaction reverted"))
		return
	}

	c.mu.Lock()
	record, ok := c.records[recordID]
	if !ok || record.Status != StatusPending {
		c.mu.Unlock()
		return
	}
	record.Status = StatusConfirmed
	record.Hash = res.Hash.Hex()
	c.confirmedScore -= amount
	score := c.confirmedScore
	primary := c.primary
	c.mu.Unlock()

	c.cache.Set(freshcache.Score, primary.Hex(), big.NewInt(score))
	c.cache.ClearType(freshcache.RedeemableTokens)
	c.logs.Infow("redeem confirmed", "record", recordID, "clicks_spent", amount, "confirmed_score", score)
}

func (c *Clicker) failRecord(recordID string, cause error) {
	c.mu.Lock()
	record, ok := c.records[recordID]
	if !ok || record.Status != StatusPending {
		c.mu.Unlock()
		return
	}
	record.Status = StatusFailed
	record.Error = displayCause(cause)
	kind := record.Kind
	c.mu.Unlock()

	c.logs.Warnw("transaction failed", "record", recordID, "kind", kind, "error", cause)
}

// FundGasWallet builds the transfer the primary wallet should send to top up
// the gas wallet, and opens a pending Fund record for it.
func (c *Clicker) FundGasWallet(ctx context.Context, amountWei *big.Int) (FundingSpec, string, error) {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return FundingSpec{}, "", ErrNotConnected
	}
	if amountWei == nil || amountWei.Sign() <= 0 {
		c.mu.Unlock()
		return FundingSpec{}, "", ErrInvalidAmount
	}
	primary := c.primary
	gasAddr := c.sender.Address()
	c.mu.Unlock()

	gasLimit := uint64(transferGasLimit)
	value, err := c.dispatch.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityNormal}, func(ctx context.Context) (any, error) {
		return c.ledger.EstimateGas(ctx, ethereum.CallMsg{
			From:  primary,
			To:    &gasAddr,
			Value: amountWei,
		})
	})
	if err != nil {
		c.logs.Warnw("gas estimate failed, using transfer default", "error", err)
	} else {
		gasLimit = value.(uint64)
	}

	record := &TxRecord{
		ID:        uuid.New().String(),
		Kind:      KindFund,
		Status:    StatusPending,
		CreatedAt: c.now(),
		Amount:    weiString(amountWei),
	}
	c.mu.Lock()
	c.addRecordLocked(record)
	c.mu.Unlock()

	return FundingSpec{
		To:       gasAddr.Hex(),
		ValueWei: amountWei.String(),
		GasLimit: gasLimit,
	}, record.ID, nil
}

// FundSubmitted attaches the hash of the funding transfer the primary wallet
// sent and starts watching it.
func (c *Clicker) FundSubmitted(recordID string, hash common.Hash) error {
	c.mu.Lock()
	record, ok := c.records[recordID]
	if !ok || record.Kind != KindFund {
		c.mu.Unlock()
		return ErrUnknownRecord
	}
	record.Hash = hash.Hex()
	c.mu.Unlock()

	c.wg.Add(1)
	go c.watchFunding(recordID, hash)
	return nil
}

func (c *Clicker) watchFunding(recordID string, hash common.Hash) {
	defer c.wg.Done()

	ticker := time.NewTicker(fundingPollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
		}

		value, err := c.dispatch.Fetch(c.ctx, scheduler.FetchOptions{Priority: scheduler.PriorityNormal}, func(ctx context.Context) (any, error) {
			receipt, err := c.ledger.TransactionReceipt(ctx, hash)
			if errors.Is(err, ethereum.NotFound) {
				return (*types.Receipt)(nil), nil
			}
			return receipt, err
		})
		if err != nil {
			if errors.Is(err, scheduler.ErrStopped) {
				return
			}
			c.failRecord(recordID, err)
			return
		}

		receipt, _ := value.(*types.Receipt)
		if receipt == nil {
			continue
		}

		c.mu.Lock()
		if record, ok := c.records[recordID]; ok && record.Status == StatusPending {
			if receipt.Status == types.ReceiptStatusSuccessful {
				record.Status = StatusConfirmed
			} else {
				record.Status = StatusFailed
				record.Error = "funding transaction reverted"
			}
		}
		c.mu.Unlock()

		c.cache.ClearType(freshcache.GasBalance)
		c.logs.Infow("funding settled", "record", recordID, "hash", hash.Hex(), "status", receipt.Status)
		return
	}
}
