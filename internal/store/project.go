// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

const projectColumns = `id, title, title_ar, description, description_ar, image,
	       gallery_images, tags, tags_ar, category, category_ar, year, link,
	       featured, created_at, updated_at`

// ProjectStore handles portfolio project database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func scanProject(row rowScanner, p *models.Project) error {
	return row.Scan(
		&p.ID, &p.Title, &p.TitleAr, &p.Description, &p.DescriptionAr,
		&p.Image, &p.GalleryImages, &p.Tags, &p.TagsAr, &p.Category,
		&p.CategoryAr, &p.Year, &p.Link, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// List returns all projects, newest first. When featuredOnly is set, only
// featured projects are returned.
func (s *ProjectStore) List(featuredOnly bool) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if featuredOnly {
		query += ` WHERE featured`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p := &models.Project{}
	err := scanProject(s.db.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects WHERE id = $1
	`, id), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with generated fields.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	result := &models.Project{}
	err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (title, title_ar, description, description_ar, image,
		                      gallery_images, tags, tags_ar, category, category_ar,
		                      year, link, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+projectColumns+`
	`, p.Title, p.TitleAr, p.Description, p.DescriptionAr, p.Image,
		p.GalleryImages, p.Tags, p.TagsAr, p.Category, p.CategoryAr,
		p.Year, p.Link, p.Featured,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update modifies an existing project. Returns nil if it doesn't exist.
func (s *ProjectStore) Update(p *models.Project) (*models.Project, error) {
	result := &models.Project{}
	err := scanProject(s.db.QueryRow(`
		UPDATE projects
		SET title = $2, title_ar = $3, description = $4, description_ar = $5,
		    image = $6, gallery_images = $7, tags = $8, tags_ar = $9,
		    category = $10, category_ar = $11, year = $12, link = $13,
		    featured = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING `+projectColumns+`
	`, p.ID, p.Title, p.TitleAr, p.Description, p.DescriptionAr, p.Image,
		p.GalleryImages, p.Tags, p.TagsAr, p.Category, p.CategoryAr,
		p.Year, p.Link, p.Featured,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return result, nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
