// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

const mediaColumns = `id, filename, original_name, content_type, size_bytes,
	       bucket, s3_key, thumb_s3_key, alt_text, created_at`

// MediaStore handles media file metadata database operations.
// The files themselves live in S3-compatible object storage.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

func scanMedia(row rowScanner, m *models.Media) error {
	return row.Scan(
		&m.ID, &m.Filename, &m.OriginalName, &m.ContentType, &m.SizeBytes,
		&m.Bucket, &m.S3Key, &m.ThumbS3Key, &m.AltText, &m.CreatedAt,
	)
}

// List returns all media items, newest first.
func (s *MediaStore) List() ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT ` + mediaColumns + `
		FROM media
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		var m models.Media
		if err := scanMedia(rows, &m); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media item by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m := &models.Media{}
	err := scanMedia(s.db.QueryRow(`
		SELECT `+mediaColumns+`
		FROM media WHERE id = $1
	`, id), m)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a new media record and returns it with generated fields.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	result := &models.Media{}
	err := scanMedia(s.db.QueryRow(`
		INSERT INTO media (filename, original_name, content_type, size_bytes,
		                   bucket, s3_key, thumb_s3_key, alt_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns+`
	`, m.Filename, m.OriginalName, m.ContentType, m.SizeBytes,
		m.Bucket, m.S3Key, m.ThumbS3Key, m.AltText,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}

// UpdateAltText sets the alt text of a media item.
func (s *MediaStore) UpdateAltText(id uuid.UUID, altText string) error {
	_, err := s.db.Exec(`UPDATE media SET alt_text = $2 WHERE id = $1`, id, altText)
	if err != nil {
		return fmt.Errorf("update media alt text: %w", err)
	}
	return nil
}

// Delete removes a media record by ID.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
