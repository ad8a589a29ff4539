// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

// BannerStore handles page banner database operations. Each static page
// has at most one banner, keyed by page name.
type BannerStore struct {
	db *sql.DB
}

// NewBannerStore creates a new BannerStore.
func NewBannerStore(db *sql.DB) *BannerStore {
	return &BannerStore{db: db}
}

// List returns all banners.
func (s *BannerStore) List() ([]models.Banner, error) {
	rows, err := s.db.Query(`
		SELECT id, page, image, created_at, updated_at
		FROM banners
		ORDER BY page
	`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var banners []models.Banner
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.ID, &b.Page, &b.Image, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

// FindByPage retrieves the banner of a page. Returns nil if the page has none.
func (s *BannerStore) FindByPage(page string) (*models.Banner, error) {
	b := &models.Banner{}
	err := s.db.QueryRow(`
		SELECT id, page, image, created_at, updated_at
		FROM banners WHERE page = $1
	`, page).Scan(&b.ID, &b.Page, &b.Image, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find banner by page: %w", err)
	}
	return b, nil
}

// Upsert sets the banner image of a page, replacing any existing one.
func (s *BannerStore) Upsert(page, image string) (*models.Banner, error) {
	b := &models.Banner{}
	err := s.db.QueryRow(`
		INSERT INTO banners (page, image)
		VALUES ($1, $2)
		ON CONFLICT (page) DO UPDATE SET image = $2, updated_at = NOW()
		RETURNING id, page, image, created_at, updated_at
	`, page, image).Scan(&b.ID, &b.Page, &b.Image, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert banner: %w", err)
	}
	return b, nil
}

// Delete removes a banner by ID.
func (s *BannerStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}

// DeleteByPage removes the banner assigned to a page, if any.
func (s *BannerStore) DeleteByPage(page string) error {
	_, err := s.db.Exec(`DELETE FROM banners WHERE page = $1`, page)
	if err != nil {
		return fmt.Errorf("delete banner for page %s: %w", page, err)
	}
	return nil
}
