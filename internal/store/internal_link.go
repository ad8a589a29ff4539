// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

// InternalLinkStore handles keyword-to-URL link database operations.
type InternalLinkStore struct {
	db *sql.DB
}

// NewInternalLinkStore creates a new InternalLinkStore.
func NewInternalLinkStore(db *sql.DB) *InternalLinkStore {
	return &InternalLinkStore{db: db}
}

func scanInternalLink(row rowScanner, l *models.InternalLink) error {
	return row.Scan(
		&l.ID, &l.Keyword, &l.URL, &l.Enabled, &l.CreatedAt, &l.UpdatedAt,
	)
}

// List returns links ordered by keyword. When enabledOnly is set, disabled
// links are filtered out; the link injector always asks for enabled ones.
func (s *InternalLinkStore) List(enabledOnly bool) ([]models.InternalLink, error) {
	query := `SELECT id, keyword, url, enabled, created_at, updated_at FROM internal_links`
	if enabledOnly {
		query += ` WHERE enabled`
	}
	query += ` ORDER BY keyword`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list internal links: %w", err)
	}
	defer rows.Close()

	var links []models.InternalLink
	for rows.Next() {
		var l models.InternalLink
		if err := scanInternalLink(rows, &l); err != nil {
			return nil, fmt.Errorf("scan internal link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// FindByID retrieves a link by its UUID. Returns nil if not found.
func (s *InternalLinkStore) FindByID(id uuid.UUID) (*models.InternalLink, error) {
	l := &models.InternalLink{}
	err := scanInternalLink(s.db.QueryRow(`
		SELECT id, keyword, url, enabled, created_at, updated_at
		FROM internal_links WHERE id = $1
	`, id), l)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find internal link by id: %w", err)
	}
	return l, nil
}

// Create inserts a new link and returns it with generated fields.
// Keywords are unique; a duplicate fails with a uniqueness violation.
func (s *InternalLinkStore) Create(l *models.InternalLink) (*models.InternalLink, error) {
	result := &models.InternalLink{}
	err := scanInternalLink(s.db.QueryRow(`
		INSERT INTO internal_links (keyword, url, enabled)
		VALUES ($1, $2, $3)
		RETURNING id, keyword, url, enabled, created_at, updated_at
	`, l.Keyword, l.URL, l.Enabled), result)
	if err != nil {
		return nil, fmt.Errorf("create internal link: %w", err)
	}
	return result, nil
}

// Update modifies an existing link. Returns nil if it doesn't exist.
func (s *InternalLinkStore) Update(l *models.InternalLink) (*models.InternalLink, error) {
	result := &models.InternalLink{}
	err := scanInternalLink(s.db.QueryRow(`
		UPDATE internal_links
		SET keyword = $2, url = $3, enabled = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, keyword, url, enabled, created_at, updated_at
	`, l.ID, l.Keyword, l.URL, l.Enabled), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update internal link: %w", err)
	}
	return result, nil
}

// Delete removes a link by ID.
func (s *InternalLinkStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM internal_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete internal link: %w", err)
	}
	return nil
}
