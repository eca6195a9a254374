package cache

import (
	"context"
	"fmt"
	"sync"

	"interlinear/internal/textutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// RenderCache stores rendered gloss blocks, in memory and optionally in
// PostgreSQL, keyed by a hash of the block source and its effective
// options. With a nil pool the cache is memory-only.
type RenderCache struct {
	pool   *pgxpool.Pool
	mu     sync.RWMutex
	memory map[string]string // hash → rendered HTML
}

// New creates a render cache. pool may be nil.
func New(pool *pgxpool.Pool) *RenderCache {
	return &RenderCache{
		pool:   pool,
		memory: make(map[string]string),
	}
}

// Key derives the cache key for a block source and an options fingerprint.
// Two blocks share a key only when both the text and the effective options
// are identical.
func Key(source, optionsFingerprint string) string {
	return textutil.Hash(source + "\x00" + optionsFingerprint)
}

// EnsureSchema creates the cache table. No-op without a pool.
func (c *RenderCache) EnsureSchema(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	_, err := c.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS gloss_render_cache (
			hash TEXT PRIMARY KEY,
			rendered TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure cache schema: %w", err)
	}
	return nil
}

// Get retrieves a cached rendering. Returns empty string and false if not
// found.
func (c *RenderCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.RLock()
	if v, ok := c.memory[key]; ok {
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	if c.pool == nil {
		return "", false
	}

	var rendered string
	err := c.pool.QueryRow(ctx,
		`SELECT rendered FROM gloss_render_cache WHERE hash = $1`, key).Scan(&rendered)
	if err != nil {
		return "", false
	}

	c.mu.Lock()
	c.memory[key] = rendered
	c.mu.Unlock()

	return rendered, true
}

// Set stores a rendering in both the in-memory and PostgreSQL cache.
func (c *RenderCache) Set(ctx context.Context, key, rendered string) error {
	c.mu.Lock()
	c.memory[key] = rendered
	c.mu.Unlock()

	if c.pool == nil {
		return nil
	}

	_, err := c.pool.Exec(ctx, `
		INSERT INTO gloss_render_cache (hash, rendered)
		VALUES ($1, $2)
		ON CONFLICT (hash) DO UPDATE SET rendered = EXCLUDED.rendered
	`, key, rendered)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Preload loads all cached renderings into memory.
func (c *RenderCache) Preload(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}

	rows, err := c.pool.Query(ctx, `SELECT hash, rendered FROM gloss_render_cache`)
	if err != nil {
		return fmt.Errorf("preload cache: %w", err)
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var hash, rendered string
		if err := rows.Scan(&hash, &rendered); err != nil {
			return fmt.Errorf("scan cache row: %w", err)
		}
		c.memory[hash] = rendered
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("preload cache: %w", err)
	}

	log.Info().Int("count", count).Msg("Preloaded render cache")
	return nil
}
