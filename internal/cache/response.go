// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for public API JSON responses.
// A public GET that hits serves straight from Valkey and skips the database
// entirely; admin-classified requests bypass this cache on both read and
// write so the dashboard always sees live rows.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// apiKeyPrefix is the Valkey key prefix for cached API responses.
const apiKeyPrefix = "api:"

// ResponseCache manages cached JSON response bodies in Valkey, keyed by
// request path (including query string).
type ResponseCache struct {
	client *redis.Client
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{client: client}
}

// Get retrieves a cached response body for a request path. Returns false on miss.
func (rc *ResponseCache) Get(ctx context.Context, path string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, apiKeyPrefix+path).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "path", path, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "path", path)
	return val, true
}

// Set stores a response body for a request path with the given TTL.
func (rc *ResponseCache) Set(ctx context.Context, path string, body []byte, ttl time.Duration) {
	if err := rc.client.Set(ctx, apiKeyPrefix+path, body, ttl).Err(); err != nil {
		slog.Warn("response cache set error", "path", path, "error", err)
	}
}

// InvalidatePath removes the cached response for a single path.
func (rc *ResponseCache) InvalidatePath(ctx context.Context, path string) {
	if err := rc.client.Del(ctx, apiKeyPrefix+path).Err(); err != nil {
		slog.Warn("response cache invalidate error", "path", path, "error", err)
		return
	}
	slog.Debug("response cache invalidated", "path", path)
}

// InvalidatePrefix removes every cached response under a path prefix by
// scanning for matching keys. Used when a mutation touches a whole
// category, since list responses with any query string could be affected.
func (rc *ResponseCache) InvalidatePrefix(ctx context.Context, prefix string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, apiKeyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "prefix", prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("response cache prefix cleared", "prefix", prefix, "deleted", deleted)
	}
}
