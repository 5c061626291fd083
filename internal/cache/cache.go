// Package cache is a redis side-table for the latest scan result. The core
// only reads or writes the whole value by key; cache failures degrade
// silently to a fresh scan.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

const scanKey = "edgebet:scan:latest"

// ScanCache stores serialized scan results with a TTL.
type ScanCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// New builds a scan cache. client may be nil, which disables caching.
func New(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *ScanCache {
	return &ScanCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "cache").Logger(),
	}
}

// Get returns the cached scan result, or ok=false on miss, disabled cache,
// or any redis error.
func (c *ScanCache) Get(ctx context.Context) (models.ScanResult, bool) {
	if c == nil || c.client == nil {
		return models.ScanResult{}, false
	}

	data, err := c.client.Get(ctx, scanKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("cache read failed")
		}
		return models.ScanResult{}, false
	}

	var result models.ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn().Err(err).Msg("cache entry corrupt")
		return models.ScanResult{}, false
	}

	return result, true
}

// Set stores a scan result. Errors are logged, never propagated.
func (c *ScanCache) Set(ctx context.Context, result models.ScanResult) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn().Err(err).Msg("serializing scan result")
		return
	}

	if err := c.client.Set(ctx, scanKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("cache write failed")
	}
}
