// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/gigradar/internal/logging"
	"github.com/tomtom215/gigradar/internal/metrics"
	"github.com/tomtom215/gigradar/internal/models"
)

// Cache is the process-wide provider response cache: badger in
// in-memory mode with native per-entry TTL. Entries are lazily expired
// by badger; Keys() counts only live entries.
//
// The cache is shared by every concurrent discovery run. Reads and
// writes are independent per key; no cross-key transaction is ever
// needed, so badger's default transactional semantics are more than
// enough.
type Cache struct {
	db     *badger.DB
	ttl    time.Duration
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache opens an in-memory cache whose entries expire after ttl.
func NewCache(ttl time.Duration) (*Cache, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

// Get returns the cached value for key. Every lookup increments exactly
// one of the hit/miss counters.
func (c *Cache) Get(key string) ([]byte, bool) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			// Read failures are indistinguishable from misses for the
			// caller; the provider call will repopulate the entry.
			logging.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		c.misses.Add(1)
		metrics.CacheMisses.Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.CacheHits.Inc()
	return value, true
}

// Set stores value under key with the cache's fixed TTL.
func (c *Cache) Set(key string, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}

// Clear drops every cached entry. Hit/miss counters are reset alongside
// so the stats endpoint reflects a fresh cache.
func (c *Cache) Clear() error {
	if err := c.db.DropAll(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	c.hits.Store(0)
	c.misses.Store(0)
	return nil
}

// Stats reports live key count and the process-lifetime hit/miss counters.
func (c *Cache) Stats() models.CacheStats {
	keys := 0
	_ = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys++
		}
		return nil
	})

	return models.CacheStats{
		Keys:   keys,
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Close releases the underlying store.
func (c *Cache) Close() error {
	return c.db.Close()
}
