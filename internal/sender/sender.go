package sender

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
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/wallet"
)

var ErrTooManyPending error = errors.New("too many pending transactions")
var ErrNoGas error = errors.New("insufficient balance in gas wallet")
var ErrNonceRetry error = errors.New("nonce refreshed, transaction can be retried")

const (
	balanceTTL  = 5 * time.Second
	gasPriceTTL = 10 * time.Second

	// suggested price bumped to 110% to improve inclusion odds
	gasPriceBumpNum = 110
	gasPriceBumpDen = 100

	defaultGasLimit  = 120_000
	receiptPollEvery = 2 * time.Second
)

// Sender owns transaction submission from the gas wallet: local nonce
// assignment, pending-count admission and confirmation watching. The nonce is
// tracked optimistically (no round-trip per transaction) and re-synced from
// the ledger whenever the two views diverge.
type Sender struct {
	logs     *zap.SugaredLogger
	ledger   Ledger
	dispatch Dispatcher
	wallet   *wallet.GasWallet
	signer   types.Signer

	maxPending int

	mu         sync.Mutex
	nonce      uint64
	inFlight   int
	balance    *big.Int
	balanceAt  time.Time
	gasPrice   *big.Int
	gasPriceAt time.Time

	// watcher lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time
}

func New(logger *zap.SugaredLogger, ledger Ledger, dispatch Dispatcher, gasWallet *wallet.GasWallet, chainID *big.Int, maxPending int) *Sender {
	if maxPending <= 0 {
		maxPending = 10
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Sender{
		logs:       logger,
		ledger:     ledger,
		dispatch:   dispatch,
		wallet:     gasWallet,
		signer:     types.LatestSignerForChainID(chainID),
		maxPending: maxPending,
		ctx:        ctx,
		cancel:     cancel,
		now:        time.Now,
	}
}

// Stop aborts all outstanding confirmation watchers and waits for them.
func (s *Sender) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Sender) Address() common.Address {
	return s.wallet.Address()
}

// Pending reports the number of submitted-but-unconfirmed transactions.
func (s *Sender) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Balance returns the gas wallet balance, cached for a few seconds. A fetch
// failure falls back to the last known value: availability over freshness.
func (s *Sender) Balance(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	if s.balance != nil && s.now().Sub(s.balanceAt) < balanceTTL {
		cached := new(big.Int).Set(s.balance)
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	value, err := s.dispatch.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityHigh}, func(ctx context.Context) (any, error) {
		return s.ledger.BalanceAt(ctx, s.wallet.Address(), nil)
	})
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.balance != nil {
			s.logs.Warnw("balance fetch failed, serving last known", "error", err)
			return new(big.Int).Set(s.balance), nil
		}
		return nil, fmt.Errorf("fetch gas wallet balance: %w", err)
	}

	balance := value.(*big.Int)
	s.mu.Lock()
	s.balance = new(big.Int).Set(balance)
	s.balanceAt = s.now()
	s.mu.Unlock()
	return balance, nil
}

// RefreshNonce re-reads the authoritative transaction count and resets the
// local counter and in-flight count to that baseline. Called at wallet
// creation and after nonce-class submission failures.
func (s *Sender) RefreshNonce(ctx context.Context) error {
	value, err := s.dispatch.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityHigh}, func(ctx context.Context) (any, error) {
		return s.ledger.PendingNonceAt(ctx, s.wallet.Address())
	})
	if err != nil {
		return fmt.Errorf("refresh nonce: %w", err)
	}

	nonce := value.(uint64)
	s.mu.Lock()
	s.nonce = nonce
	s.inFlight = 0
	s.mu.Unlock()

	s.logs.Infow("nonce refreshed from ledger", "nonce", nonce)
	return nil
}

// Send signs and submits one transaction with the next local nonce. It
// rejects synchronously when the admission ceiling is hit or the gas wallet
// is empty; a successful submission gets a confirmation watcher attached.
func (s *Sender) Send(ctx context.Context, spec TxSpec) (common.Hash, error) {
	s.mu.Lock()
	if s.inFlight >= s.maxPending {
		s.mu.Unlock()
		return common.Hash{}, ErrTooManyPending
	}
	s.mu.Unlock()

	balance, err := s.Balance(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if balance.Sign() == 0 {
		return common.Hash{}, ErrNoGas
	}

	gasPrice, err := s.suggestedGasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	gasLimit := spec.GasLimit
	if gasLimit == 0 {
		gasLimit = defaultGasLimit
	}
	value := spec.Value
	if value == nil {
		value = new(big.Int)
	}

	s.mu.Lock()
	if s.inFlight >= s.maxPending {
		s.mu.Unlock()
		return common.Hash{}, ErrTooManyPending
	}
	nonce := s.nonce
	s.nonce++
	s.inFlight++
	s.mu.Unlock()

	tx := types.NewTransaction(nonce, spec.To, value, gasLimit, gasPrice, spec.Data)
	signedTx, err := types.SignTx(tx, s.signer, s.wallet.Key())
	if err != nil {
		s.rollbackInFlight()
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	_, err = s.dispatch.Transact(ctx, scheduler.TransactOptions{Front: spec.Front}, func(ctx context.Context) (any, error) {
		return nil, s.ledger.SendTransaction(ctx, signedTx)
	})
	if err != nil {
		if chain.IsNonceError(err) {
			s.logs.Warnw("nonce error on submission, refreshing", "nonce", nonce, "error", err)
			if refreshErr := s.RefreshNonce(ctx); refreshErr != nil {
				// without a fresh baseline the slot must be handed back here
				s.logs.Errorw("nonce refresh failed", "error", refreshErr)
				s.rollbackInFlight()
			}
			return common.Hash{}, fmt.Errorf("%w: %w", ErrNonceRetry, err)
		}
		s.rollbackInFlight()
		return common.Hash{}, fmt.Errorf("submit transaction: %w", err)
	}

	hash := signedTx.Hash()
	s.logs.Infow("transaction submitted", "hash", hash.Hex(), "nonce", nonce)

	s.wg.Add(1)
	go s.watch(hash, spec.OnResult)

	return hash, nil
}

func (s *Sender) rollbackInFlight() {
	s.mu.Lock()
	if s.inFlight > 0 {
		s.inFlight--
	}
	s.mu.Unlock()
}

func (s *Sender) suggestedGasPrice(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	if s.gasPrice != nil && s.now().Sub(s.gasPriceAt) < gasPriceTTL {
		cached := new(big.Int).Set(s.gasPrice)
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	value, err := s.dispatch.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityHigh}, func(ctx context.Context) (any, error) {
		return s.ledger.SuggestGasPrice(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	price := new(big.Int).Set(value.(*big.Int))
	price.Mul(price, big.NewInt(gasPriceBumpNum))
	price.Div(price, big.NewInt(gasPriceBumpDen))

	s.mu.Lock()
	s.gasPrice = new(big.Int).Set(price)
	s.gasPriceAt = s.now()
	s.mu.Unlock()
	return price, nil
}

// watch polls for the receipt until the transaction settles or the sender
// shuts down. There is deliberately no client-side timeout here: inclusion
// may legitimately take a while.
func (s *Sender) watch(hash common.Hash, onResult Callback) {
	defer s.wg.Done()

	ticker := time.NewTicker(receiptPollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}

		value, err := s.dispatch.Fetch(s.ctx, scheduler.FetchOptions{Priority: scheduler.PriorityHigh}, func(ctx context.Context) (any, error) {
			receipt, err := s.ledger.TransactionReceipt(ctx, hash)
			if errors.Is(err, ethereum.NotFound) {
				// not mined yet, keep polling
				return (*types.Receipt)(nil), nil
			}
			return receipt, err
		})
		if err != nil {
			if errors.Is(err, scheduler.ErrStopped) {
				return
			}
			if chain.IsNonceError(err) {
				// the ledger's view diverged; re-baseline instead of
				// merely decrementing
				s.logs.Warnw("nonce-class error while watching receipt", "hash", hash.Hex(), "error", err)
				if refreshErr := s.RefreshNonce(s.ctx); refreshErr != nil {
					s.logs.Errorw("nonce refresh failed", "error", refreshErr)
				}
			} else {
				s.rollbackInFlight()
			}
			if onResult != nil {
				onResult(Result{Hash: hash, Err: err})
			}
			return
		}

		receipt, _ := value.(*types.Receipt)
		if receipt == nil {
			continue
		}

		s.rollbackInFlight()
		s.logs.Infow("transaction settled",
			"hash", hash.Hex(),
			"status", receipt.Status,
			"block", receipt.BlockNumber)
		if onResult != nil {
			onResult(Result{Hash: hash, Receipt: receipt})
		}
		return
	}
}
