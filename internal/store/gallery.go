// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

// GalleryStore handles gallery image database operations.
type GalleryStore struct {
	db *sql.DB
}

// NewGalleryStore creates a new GalleryStore.
func NewGalleryStore(db *sql.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

func scanGalleryImage(row rowScanner, g *models.GalleryImage) error {
	return row.Scan(
		&g.ID, &g.Image, &g.Alt, &g.AltAr, &g.SortOrder,
		&g.CreatedAt, &g.UpdatedAt,
	)
}

// List returns all gallery images in display order.
func (s *GalleryStore) List() ([]models.GalleryImage, error) {
	rows, err := s.db.Query(`
		SELECT id, image, alt, alt_ar, sort_order, created_at, updated_at
		FROM gallery_images
		ORDER BY sort_order, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer rows.Close()

	var images []models.GalleryImage
	for rows.Next() {
		var g models.GalleryImage
		if err := scanGalleryImage(rows, &g); err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

// FindByID retrieves a gallery image by its UUID. Returns nil if not found.
func (s *GalleryStore) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	g := &models.GalleryImage{}
	err := scanGalleryImage(s.db.QueryRow(`
		SELECT id, image, alt, alt_ar, sort_order, created_at, updated_at
		FROM gallery_images WHERE id = $1
	`, id), g)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find gallery image by id: %w", err)
	}
	return g, nil
}

// Create inserts a new gallery image and returns it with generated fields.
func (s *GalleryStore) Create(g *models.GalleryImage) (*models.GalleryImage, error) {
	result := &models.GalleryImage{}
	err := scanGalleryImage(s.db.QueryRow(`
		INSERT INTO gallery_images (image, alt, alt_ar, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, image, alt, alt_ar, sort_order, created_at, updated_at
	`, g.Image, g.Alt, g.AltAr, g.SortOrder), result)
	if err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return result, nil
}

// Update modifies an existing gallery image. Returns nil if it doesn't exist.
func (s *GalleryStore) Update(g *models.GalleryImage) (*models.GalleryImage, error) {
	result := &models.GalleryImage{}
	err := scanGalleryImage(s.db.QueryRow(`
		UPDATE gallery_images
		SET image = $2, alt = $3, alt_ar = $4, sort_order = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, image, alt, alt_ar, sort_order, created_at, updated_at
	`, g.ID, g.Image, g.Alt, g.AltAr, g.SortOrder), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}
	return result, nil
}

// Delete removes a gallery image by ID.
func (s *GalleryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	return nil
}
