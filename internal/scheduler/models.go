package scheduler

import (
	"context"
	"time"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
)

// Operation is one network call to run under the scheduler's budget.
type Operation func(ctx context.Context) (any, error)

// Priority orders informational envelopes within their traffic class.
// Transactional envelopes form their own class and always outrank these.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

// FetchOptions configures an informational (read) envelope.
type FetchOptions struct {
	Priority  Priority
	CacheType freshcache.DataType
	CacheKey  string        // empty disables the cache hook
	CacheTTL  time.Duration // 0 uses the type default
	// MaxRetries bounds transparent retries of transient failures. Zero
	// means the scheduler default.
	MaxRetries int
}

// TransactOptions configures a transactional (write) envelope.
type TransactOptions struct {
	// Front inserts ahead of queued envelopes; redemptions use this so they
	// are not stuck behind a backlog of clicks.
	Front      bool
	MaxRetries int
}

type outcome struct {
	value any
	err   error
}

type envelope struct {
	op            Operation
	transactional bool
	priority      Priority
	front         bool

	cacheType freshcache.DataType
	cacheKey  string
	cacheTTL  time.Duration

	retries    int
	maxRetries int
	notBefore  time.Time

	// buffered; an envelope resolves exactly once
	result chan outcome
}
