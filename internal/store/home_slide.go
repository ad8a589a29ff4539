// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

const homeSlideColumns = `id, title, title_ar, subtitle, subtitle_ar, image,
	       sort_order, is_active, created_at, updated_at`

// HomeSlideStore handles homepage carousel slide database operations.
type HomeSlideStore struct {
	db *sql.DB
}

// NewHomeSlideStore creates a new HomeSlideStore.
func NewHomeSlideStore(db *sql.DB) *HomeSlideStore {
	return &HomeSlideStore{db: db}
}

func scanHomeSlide(row rowScanner, h *models.HomeSlide) error {
	return row.Scan(
		&h.ID, &h.Title, &h.TitleAr, &h.Subtitle, &h.SubtitleAr, &h.Image,
		&h.SortOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
}

// List returns slides in display order. When activeOnly is set, hidden
// slides are filtered out; the public carousel always asks for active ones.
func (s *HomeSlideStore) List(activeOnly bool) ([]models.HomeSlide, error) {
	query := `SELECT ` + homeSlideColumns + ` FROM home_slides`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list home slides: %w", err)
	}
	defer rows.Close()

	var slides []models.HomeSlide
	for rows.Next() {
		var h models.HomeSlide
		if err := scanHomeSlide(rows, &h); err != nil {
			return nil, fmt.Errorf("scan home slide: %w", err)
		}
		slides = append(slides, h)
	}
	return slides, rows.Err()
}

// FindByID retrieves a slide by its UUID. Returns nil if not found.
func (s *HomeSlideStore) FindByID(id uuid.UUID) (*models.HomeSlide, error) {
	h := &models.HomeSlide{}
	err := scanHomeSlide(s.db.QueryRow(`
		SELECT `+homeSlideColumns+`
		FROM home_slides WHERE id = $1
	`, id), h)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find home slide by id: %w", err)
	}
	return h, nil
}

// Create inserts a new slide and returns it with generated fields.
func (s *HomeSlideStore) Create(h *models.HomeSlide) (*models.HomeSlide, error) {
	result := &models.HomeSlide{}
	err := scanHomeSlide(s.db.QueryRow(`
		INSERT INTO home_slides (title, title_ar, subtitle, subtitle_ar, image,
		                         sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+homeSlideColumns+`
	`, h.Title, h.TitleAr, h.Subtitle, h.SubtitleAr, h.Image,
		h.SortOrder, h.IsActive,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create home slide: %w", err)
	}
	return result, nil
}

// Update modifies an existing slide. Returns nil if it doesn't exist.
func (s *HomeSlideStore) Update(h *models.HomeSlide) (*models.HomeSlide, error) {
	result := &models.HomeSlide{}
	err := scanHomeSlide(s.db.QueryRow(`
		UPDATE home_slides
		SET title = $2, title_ar = $3, subtitle = $4, subtitle_ar = $5,
		    image = $6, sort_order = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+homeSlideColumns+`
	`, h.ID, h.Title, h.TitleAr, h.Subtitle, h.SubtitleAr, h.Image,
		h.SortOrder, h.IsActive,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update home slide: %w", err)
	}
	return result, nil
}

// Delete removes a slide by ID.
func (s *HomeSlideStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM home_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home slide: %w", err)
	}
	return nil
}
