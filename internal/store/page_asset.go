// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

const pageAssetColumns = `id, page, section, key, image_url, alt, alt_ar,
	       text, text_ar, sort_order, created_at, updated_at`

// PageAssetStore handles per-page asset slot database operations. Slots
// are addressed by (page, section, key).
type PageAssetStore struct {
	db *sql.DB
}

// NewPageAssetStore creates a new PageAssetStore.
func NewPageAssetStore(db *sql.DB) *PageAssetStore {
	return &PageAssetStore{db: db}
}

func scanPageAsset(row rowScanner, a *models.PageAsset) error {
	return row.Scan(
		&a.ID, &a.Page, &a.Section, &a.Key, &a.ImageURL, &a.Alt, &a.AltAr,
		&a.Text, &a.TextAr, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
	)
}

// List returns asset slots, optionally filtered by page and section.
// Empty filter values match everything.
func (s *PageAssetStore) List(page, section string) ([]models.PageAsset, error) {
	rows, err := s.db.Query(`
		SELECT `+pageAssetColumns+`
		FROM page_assets
		WHERE ($1 = '' OR page = $1) AND ($2 = '' OR section = $2)
		ORDER BY page, section, sort_order, key
	`, page, section)
	if err != nil {
		return nil, fmt.Errorf("list page assets: %w", err)
	}
	defer rows.Close()

	var assets []models.PageAsset
	for rows.Next() {
		var a models.PageAsset
		if err := scanPageAsset(rows, &a); err != nil {
			return nil, fmt.Errorf("scan page asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// FindByID retrieves an asset slot by its UUID. Returns nil if not found.
func (s *PageAssetStore) FindByID(id uuid.UUID) (*models.PageAsset, error) {
	a := &models.PageAsset{}
	err := scanPageAsset(s.db.QueryRow(`
		SELECT `+pageAssetColumns+`
		FROM page_assets WHERE id = $1
	`, id), a)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page asset by id: %w", err)
	}
	return a, nil
}

// Upsert sets the content of an asset slot, creating it if the
// (page, section, key) address is new.
func (s *PageAssetStore) Upsert(a *models.PageAsset) (*models.PageAsset, error) {
	result := &models.PageAsset{}
	err := scanPageAsset(s.db.QueryRow(`
		INSERT INTO page_assets (page, section, key, image_url, alt, alt_ar,
		                         text, text_ar, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (page, section, key) DO UPDATE
		SET image_url = $4, alt = $5, alt_ar = $6, text = $7, text_ar = $8,
		    sort_order = $9, updated_at = NOW()
		RETURNING `+pageAssetColumns+`
	`, a.Page, a.Section, a.Key, a.ImageURL, a.Alt, a.AltAr,
		a.Text, a.TextAr, a.SortOrder,
	), result)
	if err != nil {
		return nil, fmt.Errorf("upsert page asset: %w", err)
	}
	return result, nil
}

// Update rewrites an asset slot by ID, address included. Returns nil if
// no slot has that ID.
func (s *PageAssetStore) Update(a *models.PageAsset) (*models.PageAsset, error) {
	result := &models.PageAsset{}
	err := scanPageAsset(s.db.QueryRow(`
		UPDATE page_assets
		SET page = $2, section = $3, key = $4, image_url = $5, alt = $6,
		    alt_ar = $7, text = $8, text_ar = $9, sort_order = $10,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+pageAssetColumns+`
	`, a.ID, a.Page, a.Section, a.Key, a.ImageURL, a.Alt, a.AltAr,
		a.Text, a.TextAr, a.SortOrder,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update page asset: %w", err)
	}
	return result, nil
}

// Delete removes an asset slot by ID.
func (s *PageAssetStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM page_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page asset: %w", err)
	}
	return nil
}
