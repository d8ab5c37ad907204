// Package lettercache holds the in-memory view of the pre-built letter
// metadata snapshot stored alongside the edition data.
package lettercache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// Fetcher fetches a stored resource by its database path.
type Fetcher interface {
	GetByPath(ctx context.Context, path string) (string, error)
}

// Metrics receives cache load observations.
type Metrics interface {
	RecordCacheLoad(service, backend, outcome string, entries int)
}

// Cache loads the letter snapshot at most once until invalidated.
// Concurrent first readers share one in-flight load.
type Cache struct {
	fetcher Fetcher
	path    string
	logger  *slog.Logger
	metrics Metrics
	service string
	backend string

	group singleflight.Group

	mu      sync.RWMutex
	entries []domain.LetterCacheEntry
	loaded  bool
}

func New(fetcher Fetcher, path string, logger *slog.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		path:    path,
		logger:  logger,
	}
}

// WithMetrics attaches load observations under the given labels.
func (c *Cache) WithMetrics(m Metrics, service, backend string) *Cache {
	c.metrics = m
	c.service = service
	c.backend = backend
	return c
}

// snapshot mirrors the JSON layout of the stored cache document: a
// top-level "letter" array of entries each wrapping its payload in "data".
type snapshot struct {
	Letter []struct {
		Data *domain.LetterCacheEntry `json:"data"`
	} `json:"letter"`
}

// Letters returns the cached snapshot, loading it on first use. A fetch
// failure propagates and leaves the cache unpopulated; a parse failure
// degrades to an empty cache so read paths keep working.
func (c *Cache) Letters(ctx context.Context) ([]domain.LetterCacheEntry, error) {
	c.mu.RLock()
	if c.loaded {
		entries := c.entries
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("load", func() (any, error) {
		return c.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LetterCacheEntry), nil
}

func (c *Cache) load(ctx context.Context) ([]domain.LetterCacheEntry, error) {
	c.mu.RLock()
	if c.loaded {
		entries := c.entries
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()

	raw, err := c.fetcher.GetByPath(ctx, c.path)
	if err != nil {
		c.recordLoad("fetch_error", 0)
		return nil, err
	}

	var parsed snapshot
	entries := []domain.LetterCacheEntry{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.logger.Warn("letter cache snapshot malformed, using empty cache",
			"path", c.path, "error", err)
		c.recordLoad("parse_error", 0)
	} else {
		for _, wrapper := range parsed.Letter {
			if wrapper.Data != nil {
				entries = append(entries, *wrapper.Data)
			}
		}
		c.logger.Info("letter cache loaded", "path", c.path, "entries", len(entries))
		c.recordLoad("ok", len(entries))
	}

	c.mu.Lock()
	c.entries = entries
	c.loaded = true
	c.mu.Unlock()
	return entries, nil
}

// Invalidate clears the snapshot; the next Letters call reloads it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.loaded = false
	c.mu.Unlock()
}

func (c *Cache) recordLoad(outcome string, entries int) {
	if c.metrics != nil {
		c.metrics.RecordCacheLoad(c.service, c.backend, outcome, entries)
	}
}
