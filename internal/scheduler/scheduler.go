package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
)

const (
	txTick   = 100 * time.Millisecond
	infoTick = 1 * time.Second

	windowSize  = 1 * time.Second
	readTimeout = 10 * time.Second

	defaultFetchRetries    = 3
	defaultTransactRetries = 1

	rateLimitInitialDelay = 500 * time.Millisecond
	rateLimitMaxDelay     = 10 * time.Second
	maxBackoffInterval    = 30 * time.Second
	errorCooldown         = 60 * time.Second
)

var ErrStopped error = errors.New("scheduler is stopped")

// Config carries the per-second request budgets, one per traffic class. The
// two must sum to at most the endpoint's aggregate allowance.
type Config struct {
	TxPerSecond   int
	InfoPerSecond int
}

// Scheduler is the single chokepoint for all network calls. Two independent
// loops drain a transactional queue (fast tick) and three informational
// priority queues (slow tick), each under its own sliding one-second budget.
type Scheduler struct {
	logs     *zap.SugaredLogger
	cache    *freshcache.Cache
	switcher EndpointSwitcher
	cfg      Config

	mu         sync.Mutex
	txQueue    []*envelope
	infoQueues [3][]*envelope // indexed by Priority
	txWindow   []time.Time
	infoWindow []time.Time
	visible    bool

	backoffUntil   time.Time
	lastError      time.Time
	rateLimitDelay time.Duration
	retryBackoff   *backoff.ExponentialBackOff
	status         string

	processing int32  // atomic
	processed  uint64 // atomic
	failed     uint64 // atomic

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time
}

func New(logger *zap.SugaredLogger, cache *freshcache.Cache, switcher EndpointSwitcher, cfg Config) *Scheduler {
	if cfg.TxPerSecond <= 0 {
		cfg.TxPerSecond = 9
	}
	if cfg.InfoPerSecond <= 0 {
		cfg.InfoPerSecond = 1
	}

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = rateLimitInitialDelay
	retry.MaxInterval = maxBackoffInterval
	retry.MaxElapsedTime = 0

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		logs:           logger,
		cache:          cache,
		switcher:       switcher,
		cfg:            cfg,
		visible:        true,
		rateLimitDelay: rateLimitInitialDelay,
		retryBackoff:   retry,
		status:         "ok",
		ctx:            ctx,
		cancel:         cancel,
		now:            time.Now,
	}
}

// Run starts the two drain loops. Call Stop to shut them down.
func (s *Scheduler) Run() {
	s.wg.Add(2)
	go s.loop(txTick, s.drainTransactional)
	go s.loop(infoTick, s.drainInformational)
}

// Stop cancels in-flight operations and waits for both loops to exit. Queued
// envelopes are rejected with ErrStopped.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	pending := s.txQueue
	s.txQueue = nil
	for i := range s.infoQueues {
		pending = append(pending, s.infoQueues[i]...)
		s.infoQueues[i] = nil
	}
	s.mu.Unlock()

	for _, env := range pending {
		env.result <- outcome{err: ErrStopped}
	}
}

// Fetch runs an informational operation under the informational budget,
// blocking until it resolves. A fresh cache hit short-circuits the network
// entirely.
func (s *Scheduler) Fetch(ctx context.Context, opts FetchOptions, op Operation) (any, error) {
	if opts.CacheKey != "" && s.cache != nil {
		if value, ok := s.cache.Get(opts.CacheType, opts.CacheKey); ok {
			return value, nil
		}
	}

	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultFetchRetries
	}

	env := &envelope{
		op:         op,
		priority:   opts.Priority,
		cacheType:  opts.CacheType,
		cacheKey:   opts.CacheKey,
		cacheTTL:   opts.CacheTTL,
		maxRetries: maxRetries,
		result:     make(chan outcome, 1),
	}

	s.mu.Lock()
	s.infoQueues[env.priority] = append(s.infoQueues[env.priority], env)
	s.mu.Unlock()

	return s.await(ctx, env)
}

// Transact runs a write operation under the transactional budget, blocking
// until it resolves.
func (s *Scheduler) Transact(ctx context.Context, opts TransactOptions, op Operation) (any, error) {
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultTransactRetries
	}

	env := &envelope{
		op:            op,
		transactional: true,
		front:         opts.Front,
		maxRetries:    maxRetries,
		result:        make(chan outcome, 1),
	}

	s.mu.Lock()
	if env.front {
		s.txQueue = append([]*envelope{env}, s.txQueue...)
	} else {
		s.txQueue = append(s.txQueue, env)
	}
	s.mu.Unlock()

	return s.await(ctx, env)
}

// await blocks on the envelope's single-use result. An abandoned caller does
// not cancel the envelope; it runs to completion and its outcome is dropped.
func (s *Scheduler) await(ctx context.Context, env *envelope) (any, error) {
	select {
	case out := <-env.result:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.ctx.Done():
		return nil, ErrStopped
	}
}

// SetVisible suspends or resumes dispatching. Hidden pages spend none of the
// shared rate budget.
func (s *Scheduler) SetVisible(visible bool) {
	s.mu.Lock()
	s.visible = visible
	s.mu.Unlock()
	if s.cache != nil {
		s.cache.SetVisible(visible)
	}
}

// QueueLengths reports the transactional and informational backlog.
func (s *Scheduler) QueueLengths() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := 0
	for i := range s.infoQueues {
		info += len(s.infoQueues[i])
	}
	return len(s.txQueue), info
}

// Processing reports the number of in-flight operations.
func (s *Scheduler) Processing() int {
	return int(atomic.LoadInt32(&s.processing))
}

// Counters reports totals of resolved and failed envelopes.
func (s *Scheduler) Counters() (uint64, uint64) {
	return atomic.LoadUint64(&s.processed), atomic.LoadUint64(&s.failed)
}

// Status is a short human-readable network state for the UI.
func (s *Scheduler) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Scheduler) loop(tick time.Duration, drain func()) {
	defer s.wg.Done()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			drain()
		}
	}
}

func (s *Scheduler) drainTransactional() {
	for s.dispatchNext(true) {
	}
}

func (s *Scheduler) drainInformational() {
	for s.dispatchNext(false) {
	}
}

// dispatchNext admits at most one envelope of the given class into flight.
// Returns false when the class has nothing eligible or no window capacity.
func (s *Scheduler) dispatchNext(transactional bool) bool {
	s.mu.Lock()

	now := s.now()
	if !s.visible || now.Before(s.backoffUntil) {
		s.mu.Unlock()
		return false
	}

	var env *envelope
	if transactional {
		env = takeEligible(&s.txQueue, now)
	} else {
		// drain order: high, normal, low
		for _, p := range []Priority{PriorityHigh, PriorityNormal, PriorityLow} {
			if env = takeEligible(&s.infoQueues[p], now); env != nil {
				break
			}
		}
	}
	if env == nil {
		s.mu.Unlock()
		return false
	}

	window, budget := &s.infoWindow, s.cfg.InfoPerSecond
	if transactional {
		window, budget = &s.txWindow, s.cfg.TxPerSecond
	}
	if !admit(window, budget, now) {
		// no capacity this tick; put it back where it came from
		s.requeueLocked(env, true)
		s.mu.Unlock()
		return false
	}

	s.mu.Unlock()

	atomic.AddInt32(&s.processing, 1)
	s.wg.Add(1)
	go s.execute(env)
	return true
}

// takeEligible removes and returns the first envelope whose retry hold has
// elapsed, preserving queue order for the rest.
func takeEligible(queue *[]*envelope, now time.Time) *envelope {
	for i, env := range *queue {
		if env.notBefore.After(now) {
			continue
		}
		*queue = append((*queue)[:i], (*queue)[i+1:]...)
		return env
	}
	return nil
}

// admit checks the sliding one-second window for spare capacity and records
// the dispatch timestamp when there is.
func admit(window *[]time.Time, budget int, now time.Time) bool {
	cutoff := now.Add(-windowSize)
	kept := (*window)[:0]
	for _, ts := range *window {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	*window = kept

	if len(*window) >= budget {
		return false
	}
	*window = append(*window, now)
	return true
}

func (s *Scheduler) requeueLocked(env *envelope, front bool) {
	if env.transactional {
		if front {
			s.txQueue = append([]*envelope{env}, s.txQueue...)
		} else {
			s.txQueue = append(s.txQueue, env)
		}
		return
	}
	if front {
		s.infoQueues[env.priority] = append([]*envelope{env}, s.infoQueues[env.priority]...)
	} else {
		s.infoQueues[env.priority] = append(s.infoQueues[env.priority], env)
	}
}

func (s *Scheduler) execute(env *envelope) {
	defer s.wg.Done()
	defer atomic.AddInt32(&s.processing, -1)

	ctx := s.ctx
	if !env.transactional {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, readTimeout)
		defer cancel()
	}

	value, err := env.op(ctx)
	if err == nil {
		s.onSuccess(env, value)
		return
	}
	s.onFailure(env, err)
}

func (s *Scheduler) onSuccess(env *envelope, value any) {
	if env.cacheKey != "" && s.cache != nil {
		ttl := env.cacheTTL
		if ttl <= 0 {
			ttl = s.cache.TTLFor(env.cacheType)
		}
		s.cache.SetTTL(env.cacheType, env.cacheKey, value, ttl)
		s.cache.MarkRefreshed(env.cacheType)
	}

	s.mu.Lock()
	if !s.lastError.IsZero() && s.now().Sub(s.lastError) >= errorCooldown {
		s.rateLimitDelay = rateLimitInitialDelay
		s.retryBackoff.Reset()
		s.lastError = time.Time{}
		s.status = "ok"
	}
	s.mu.Unlock()

	atomic.AddUint64(&s.processed, 1)
	env.result <- outcome{value: value}
}

func (s *Scheduler) onFailure(env *envelope, err error) {
	rateLimited := chain.IsRateLimited(err)

	s.mu.Lock()
	now := s.now()
	s.lastError = now
	if rateLimited {
		switched := s.switcher != nil && s.switcher.Switch()
		s.backoffUntil = now.Add(s.rateLimitDelay)
		s.rateLimitDelay = min(s.rateLimitDelay*2, rateLimitMaxDelay)
		if switched {
			s.status = "rate limited; switched endpoint"
		} else {
			s.status = "rate limited; backing off"
		}
		s.logs.Warnw("request rate limited",
			"switched_endpoint", switched,
			"backoff_until", s.backoffUntil,
			"error", err)
	} else {
		delay := s.retryBackoff.NextBackOff()
		s.backoffUntil = now.Add(delay)
		s.status = "degraded; backing off"
		s.logs.Warnw("request failed",
			"backoff", delay,
			"transactional", env.transactional,
			"error", err)
	}
	backoffUntil := s.backoffUntil
	s.mu.Unlock()

	if env.retries < env.maxRetries && !errors.Is(err, context.Canceled) {
		env.retries++
		env.notBefore = backoffUntil

		s.mu.Lock()
		// transactional envelopes go back to the front so nonce order holds
		s.requeueLocked(env, env.transactional || env.front)
		s.mu.Unlock()
		return
	}

	atomic.AddUint64(&s.failed, 1)
	env.result <- outcome{err: err}
}
