package core

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/chain"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
)

// Reconcile merges freshly fetched on-chain history into the in-memory
// records: confirmed events win over local pending copies sharing a hash,
// missing confirmed entries are rebuilt, and hashless pending records past
// the staleness threshold are presumed abandoned and pruned.
func (c *Clicker) Reconcile(ctx context.Context) error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return ErrNotConnected
	}
	primary := c.primary
	gasAddr := c.sender.Address()
	c.mu.Unlock()

	events, err := c.fetchHistory(ctx, primary, gasAddr)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	byHash := make(map[string]*TxRecord, len(c.records))
	for _, record := range c.records {
		if record.Hash != "" {
			byHash[record.Hash] = record
		}
	}

	for _, event := range events {
		hash := event.TxHash.Hex()
		if local, ok := byHash[hash]; ok {
			// confirmed copy wins; the pending click settles, so its point
			// moves from the pending tally into the confirmed score
			if local.Status == StatusPending {
				local.Status = StatusConfirmed
				if local.Kind == KindClick {
					c.pendingClicks--
					c.confirmedScore++
				}
			}
			continue
		}
		record := eventToRecord(event)
		record.CreatedAt = c.now()
		c.addRecordLocked(record)
		byHash[hash] = record
	}

	c.pruneStaleLocked()
	return nil
}

func (c *Clicker) fetchHistory(ctx context.Context, primary, gasAddr common.Address) ([]chain.GameEvent, error) {
	latestValue, err := c.dispatch.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityLow}, func(ctx context.Context) (any, error) {
		return c.ledger.BlockNumber(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch block number: %w", err)
	}
	latest := latestValue.(uint64)

	from := uint64(0)
	if latest > historyLookback {
		from = latest - historyLookback
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		Addresses: []common.Address{c.contract.Address()},
		Topics: [][]common.Hash{
			{c.contract.ClickTopic(), c.contract.RedeemTopic(), c.contract.ContractFundedTopic()},
			{addressTopic(gasAddr), addressTopic(primary)},
		},
	}

	value, err := c.dispatch.Fetch(ctx, scheduler.FetchOptions{
		Priority:  scheduler.PriorityLow,
		CacheType: freshcache.History,
		CacheKey:  primary.Hex(),
	}, func(ctx context.Context) (any, error) {
		entries, err := c.ledger.FilterLogs(ctx, query)
		if err != nil {
			return nil, err
		}
		events := make([]chain.GameEvent, 0, len(entries))
		for _, entry := range entries {
			event, err := c.contract.ParseEvent(entry)
			if err != nil {
				continue
			}
			events = append(events, event)
		}
		return events, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch history logs: %w", err)
	}
	return value.([]chain.GameEvent), nil
}

func eventToRecord(event chain.GameEvent) *TxRecord {
	record := &TxRecord{
		ID:     uuid.New().String(),
		Status: StatusConfirmed,
		Hash:   event.TxHash.Hex(),
	}
	switch event.Kind {
	case chain.EventClick:
		record.Kind = KindClick
		record.Points = 1
	case chain.EventRedeem:
		record.Kind = KindRedeem
		if event.Value != nil {
			record.Points = -event.Value.Int64()
		}
		if event.Tokens != nil {
			record.Tokens = event.Tokens.Int64()
		}
	case chain.EventContractFunded:
		record.Kind = KindFund
		record.Amount = weiString(event.Value)
	}
	return record
}

// pruneStaleLocked drops hashless pending records past the staleness
// threshold, undoing their optimistic contribution.
func (c *Clicker) pruneStaleLocked() {
	cutoff := c.now().Add(-stalePendingAfter)
	kept := c.order[:0]
	for _, id := range c.order {
		record, ok := c.records[id]
		if !ok {
			continue
		}
		if record.Status == StatusPending && record.Hash == "" && record.CreatedAt.Before(cutoff) {
			if record.Kind == KindClick {
				c.pendingClicks--
			}
			delete(c.records, id)
			c.logs.Warnw("pruned abandoned pending record", "record", id, "kind", record.Kind)
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
}

func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}
