// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

const testimonialColumns = `id, name, name_ar, role, role_ar, quote, quote_ar,
	       rating, approved, created_at, updated_at`

// TestimonialStore handles customer testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

func scanTestimonial(row rowScanner, m *models.Testimonial) error {
	return row.Scan(
		&m.ID, &m.Name, &m.NameAr, &m.Role, &m.RoleAr, &m.Quote, &m.QuoteAr,
		&m.Rating, &m.Approved, &m.CreatedAt, &m.UpdatedAt,
	)
}

// List returns testimonials, newest first. When approvedOnly is set, only
// approved testimonials are returned; the public site always asks for those.
func (s *TestimonialStore) List(approvedOnly bool) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if approvedOnly {
		query += ` WHERE approved`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		var m models.Testimonial
		if err := scanTestimonial(rows, &m); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by its UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	m := &models.Testimonial{}
	err := scanTestimonial(s.db.QueryRow(`
		SELECT `+testimonialColumns+`
		FROM testimonials WHERE id = $1
	`, id), m)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return m, nil
}

// Create inserts a new testimonial and returns it with generated fields.
func (s *TestimonialStore) Create(m *models.Testimonial) (*models.Testimonial, error) {
	result := &models.Testimonial{}
	err := scanTestimonial(s.db.QueryRow(`
		INSERT INTO testimonials (name, name_ar, role, role_ar, quote, quote_ar,
		                          rating, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+testimonialColumns+`
	`, m.Name, m.NameAr, m.Role, m.RoleAr, m.Quote, m.QuoteAr,
		m.Rating, m.Approved,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies an existing testimonial. Returns nil if it doesn't exist.
func (s *TestimonialStore) Update(m *models.Testimonial) (*models.Testimonial, error) {
	result := &models.Testimonial{}
	err := scanTestimonial(s.db.QueryRow(`
		UPDATE testimonials
		SET name = $2, name_ar = $3, role = $4, role_ar = $5, quote = $6,
		    quote_ar = $7, rating = $8, approved = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING `+testimonialColumns+`
	`, m.ID, m.Name, m.NameAr, m.Role, m.RoleAr, m.Quote, m.QuoteAr,
		m.Rating, m.Approved,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return result, nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
