// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

const serviceColumns = `id, title, title_ar, description, description_ar, icon, image,
	       features, features_ar, featured, created_at, updated_at`

// ServiceStore handles service offering database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

func scanService(row rowScanner, v *models.Service) error {
	return row.Scan(
		&v.ID, &v.Title, &v.TitleAr, &v.Description, &v.DescriptionAr,
		&v.Icon, &v.Image, &v.Features, &v.FeaturesAr, &v.Featured,
		&v.CreatedAt, &v.UpdatedAt,
	)
}

// List returns all services in insertion order.
func (s *ServiceStore) List() ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT ` + serviceColumns + `
		FROM services
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var v models.Service
		if err := scanService(rows, &v); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, v)
	}
	return services, rows.Err()
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	v := &models.Service{}
	err := scanService(s.db.QueryRow(`
		SELECT `+serviceColumns+`
		FROM services WHERE id = $1
	`, id), v)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return v, nil
}

// Create inserts a new service and returns it with generated fields.
func (s *ServiceStore) Create(v *models.Service) (*models.Service, error) {
	result := &models.Service{}
	err := scanService(s.db.QueryRow(`
		INSERT INTO services (title, title_ar, description, description_ar,
		                      icon, image, features, features_ar, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+serviceColumns+`
	`, v.Title, v.TitleAr, v.Description, v.DescriptionAr,
		v.Icon, v.Image, v.Features, v.FeaturesAr, v.Featured,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return result, nil
}

// Update modifies an existing service. Returns nil if it doesn't exist.
func (s *ServiceStore) Update(v *models.Service) (*models.Service, error) {
	result := &models.Service{}
	err := scanService(s.db.QueryRow(`
		UPDATE services
		SET title = $2, title_ar = $3, description = $4, description_ar = $5,
		    icon = $6, image = $7, features = $8, features_ar = $9,
		    featured = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING `+serviceColumns+`
	`, v.ID, v.Title, v.TitleAr, v.Description, v.DescriptionAr,
		v.Icon, v.Image, v.Features, v.FeaturesAr, v.Featured,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return result, nil
}

// Delete removes a service by ID.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
