// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// cache_log.go records cache invalidation events in the database for
// audit and debugging purposes. Each entry captures which category was
// invalidated, the concrete cache path targeted, and why.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// CacheLogEntry is one recorded invalidation event.
type CacheLogEntry struct {
	ID            int64     `json:"id"`
	Category      string    `json:"category"`
	Target        string    `json:"target"`
	Action        string    `json:"action"`
	InvalidatedAt time.Time `json:"invalidatedAt"`
}

// CacheLogStore handles cache invalidation log operations. It satisfies
// cache.AuditLog.
type CacheLogStore struct {
	db *sql.DB
}

// NewCacheLogStore creates a new CacheLogStore.
func NewCacheLogStore(db *sql.DB) *CacheLogStore {
	return &CacheLogStore{db: db}
}

// Log records a cache invalidation event.
func (s *CacheLogStore) Log(category, target, action string) {
	_, err := s.db.Exec(`
		INSERT INTO cache_invalidation_log (category, target, action)
		VALUES ($1, $2, $3)
	`, category, target, action)
	if err != nil {
		// Log but don't fail — cache logging is best-effort.
		slog.Warn("failed to log cache invalidation",
			"category", category,
			"target", target,
			"action", action,
			"error", err,
		)
		return
	}
	slog.Debug("cache invalidation logged",
		"category", category,
		"target", target,
		"action", action,
	)
}

// RecentEntries returns the most recent cache invalidation events for
// debugging. Limited to the specified count.
func (s *CacheLogStore) RecentEntries(limit int) ([]CacheLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, category, target, action, invalidated_at
		FROM cache_invalidation_log
		ORDER BY invalidated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list cache log entries: %w", err)
	}
	defer rows.Close()

	var entries []CacheLogEntry
	for rows.Next() {
		var e CacheLogEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.Target, &e.Action, &e.InvalidatedAt); err != nil {
			return nil, fmt.Errorf("scan cache log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
