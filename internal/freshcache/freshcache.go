package freshcache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DataType enumerates the categories of ledger-derived data the client caches.
// Each carries its own TTL and background refresh interval.
type DataType int

const (
	Score DataType = iota
	RedeemableTokens
	GasBalance
	ContractBalance
	GasPrice
	ClicksPerToken
	History
)

func (dt DataType) String() string {
	switch dt {
	case Score:
		return "score"
	case RedeemableTokens:
		return "redeemable_tokens"
	case GasBalance:
		return "gas_balance"
	case ContractBalance:
		return "contract_balance"
	case GasPrice:
		return "gas_price"
	case ClicksPerToken:
		return "clicks_per_token"
	case History:
		return "history"
	default:
		return "unknown"
	}
}

type policy struct {
	ttl          time.Duration
	refreshEvery time.Duration
}

var policies = map[DataType]policy{
	Score:            {ttl: 5 * time.Second, refreshEvery: 10 * time.Second},
	RedeemableTokens: {ttl: 15 * time.Second, refreshEvery: 30 * time.Second},
	GasBalance:       {ttl: 5 * time.Second, refreshEvery: 15 * time.Second},
	ContractBalance:  {ttl: 60 * time.Second, refreshEvery: 120 * time.Second},
	GasPrice:         {ttl: 10 * time.Second, refreshEvery: 30 * time.Second},
	ClicksPerToken:   {ttl: 10 * time.Minute, refreshEvery: 30 * time.Minute},
	History:          {ttl: 30 * time.Second, refreshEvery: 60 * time.Second},
}

var defaultPolicy = policy{ttl: 30 * time.Second, refreshEvery: 60 * time.Second}

const (
	inactivityThreshold = 2 * time.Minute
	inactivityPenalty   = 5
	cleanupInterval     = 1 * time.Minute
)

// Cache stores ledger reads keyed by (data type, sub key) and decides when a
// type is due for a network refresh. Expired entries read as absent.
type Cache struct {
	store *gocache.Cache

	mu           sync.Mutex
	lastRefresh  map[DataType]time.Time
	lastActivity time.Time
	visible      bool

	now func() time.Time
}

func New() *Cache {
	c := &Cache{
		store:       gocache.New(defaultPolicy.ttl, cleanupInterval),
		lastRefresh: make(map[DataType]time.Time),
		visible:     true,
		now:         time.Now,
	}
	c.lastActivity = c.now()
	return c
}

func key(dt DataType, subKey string) string {
	return dt.String() + ":" + subKey
}

func (c *Cache) Get(dt DataType, subKey string) (any, bool) {
	return c.store.Get(key(dt, subKey))
}

// Set stores a value under the type's default TTL.
func (c *Cache) Set(dt DataType, subKey string, value any) {
	c.SetTTL(dt, subKey, value, c.TTLFor(dt))
}

// SetTTL stores a value with an explicit expiry override.
func (c *Cache) SetTTL(dt DataType, subKey string, value any, ttl time.Duration) {
	c.store.Set(key(dt, subKey), value, ttl)
}

func (c *Cache) Clear(dt DataType, subKey string) {
	c.store.Delete(key(dt, subKey))
	c.mu.Lock()
	delete(c.lastRefresh, dt)
	c.mu.Unlock()
}

// ClearType drops every sub-key of the given type so the next read is forced
// to the network.
func (c *Cache) ClearType(dt DataType) {
	prefix := dt.String() + ":"
	for k := range c.store.Items() {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			c.store.Delete(k)
		}
	}
	c.mu.Lock()
	delete(c.lastRefresh, dt)
	c.mu.Unlock()
}

// TTLFor returns the configured TTL for a data type.
func (c *Cache) TTLFor(dt DataType) time.Duration {
	if p, ok := policies[dt]; ok {
		return p.ttl
	}
	return defaultPolicy.ttl
}

// ShouldRefresh decides whether a background poll for the given type is due.
// Forced refreshes always pass; nothing refreshes while the page is hidden;
// otherwise the type's refresh interval applies, stretched by a penalty
// factor when the user has gone idle.
func (c *Cache) ShouldRefresh(dt DataType, force bool) bool {
	if force {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.visible {
		return false
	}

	interval := defaultPolicy.refreshEvery
	if p, ok := policies[dt]; ok {
		interval = p.refreshEvery
	}

	now := c.now()
	if now.Sub(c.lastActivity) > inactivityThreshold {
		interval *= inactivityPenalty
	}

	last, ok := c.lastRefresh[dt]
	if !ok {
		return true
	}
	return now.Sub(last) >= interval
}

// MarkRefreshed records a completed refresh of the given type.
func (c *Cache) MarkRefreshed(dt DataType) {
	c.mu.Lock()
	c.lastRefresh[dt] = c.now()
	c.mu.Unlock()
}

// MarkActivity records a user interaction, lifting the inactivity penalty.
func (c *Cache) MarkActivity() {
	c.mu.Lock()
	c.lastActivity = c.now()
	c.mu.Unlock()
}

// SetVisible records the host page's visibility state.
func (c *Cache) SetVisible(visible bool) {
	c.mu.Lock()
	c.visible = visible
	c.mu.Unlock()
}

func (c *Cache) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}
