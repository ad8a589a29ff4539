// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"almohtaref/internal/models"
	"almohtaref/internal/slug"
)

const blogColumns = `id, title, content, rendered_html, excerpt, image, author, featured,
	       slug, slug_auto, auto_seo, auto_internal_links,
	       meta_title, meta_description, meta_keywords, links_applied,
	       created_at, updated_at`

// BlogStore handles all blog-related database operations. It also
// satisfies slug.MigrationSource so the slug migration can sweep over it.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner, b *models.Blog) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Content, &b.RenderedHTML, &b.Excerpt, &b.Image,
		&b.Author, &b.Featured, &b.Slug, &b.SlugAuto, &b.AutoSEO,
		&b.AutoInternalLinks, &b.MetaTitle, &b.MetaDescription,
		&b.MetaKeywords, &b.LinksApplied, &b.CreatedAt, &b.UpdatedAt,
	)
}

// List returns all blogs, newest first.
func (s *BlogStore) List() ([]models.Blog, error) {
	rows, err := s.db.Query(`
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var b models.Blog
		if err := scanBlog(rows, &b); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// FindByID retrieves a blog by its UUID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.Blog, error) {
	b := &models.Blog{}
	err := scanBlog(s.db.QueryRow(`
		SELECT `+blogColumns+`
		FROM blogs WHERE id = $1
	`, id), b)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by id: %w", err)
	}
	return b, nil
}

// FindBySlug retrieves a blog by its slug. Returns nil if not found.
func (s *BlogStore) FindBySlug(slugVal string) (*models.Blog, error) {
	b := &models.Blog{}
	err := scanBlog(s.db.QueryRow(`
		SELECT `+blogColumns+`
		FROM blogs WHERE slug = $1
	`, slugVal), b)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	return b, nil
}

// SlugExists reports whether a blog other than the excluded one already
// owns the given slug. The exclusion lets updates keep their own slug.
func (s *BlogStore) SlugExists(slugVal string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1 AND id <> $2)
	`, slugVal, exclude).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new blog and returns it with the generated timestamps.
// The caller supplies the ID so fallback slugs can embed it.
func (s *BlogStore) Create(b *models.Blog) (*models.Blog, error) {
	result := &models.Blog{}
	err := scanBlog(s.db.QueryRow(`
		INSERT INTO blogs (id, title, content, rendered_html, excerpt, image, author,
		                   featured, slug, slug_auto, auto_seo, auto_internal_links,
		                   meta_title, meta_description, meta_keywords, links_applied)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+blogColumns+`
	`, b.ID, b.Title, b.Content, b.RenderedHTML, b.Excerpt, b.Image, b.Author,
		b.Featured, b.Slug, b.SlugAuto, b.AutoSEO, b.AutoInternalLinks,
		b.MetaTitle, b.MetaDescription, b.MetaKeywords, b.LinksApplied,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return result, nil
}

// Update modifies an existing blog. Returns nil if the blog doesn't exist.
func (s *BlogStore) Update(b *models.Blog) (*models.Blog, error) {
	result := &models.Blog{}
	err := scanBlog(s.db.QueryRow(`
		UPDATE blogs
		SET title = $2, content = $3, rendered_html = $4, excerpt = $5,
		    image = $6, author = $7, featured = $8, slug = $9, slug_auto = $10,
		    auto_seo = $11, auto_internal_links = $12, meta_title = $13,
		    meta_description = $14, meta_keywords = $15, links_applied = $16,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+blogColumns+`
	`, b.ID, b.Title, b.Content, b.RenderedHTML, b.Excerpt, b.Image, b.Author,
		b.Featured, b.Slug, b.SlugAuto, b.AutoSEO, b.AutoInternalLinks,
		b.MetaTitle, b.MetaDescription, b.MetaKeywords, b.LinksApplied,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return result, nil
}

// UpdateSlug replaces a blog's slug and clears the auto-generated marker,
// so the slug migration never touches the row again.
func (s *BlogStore) UpdateSlug(id uuid.UUID, slugVal string) error {
	_, err := s.db.Exec(`
		UPDATE blogs SET slug = $2, slug_auto = FALSE, updated_at = NOW()
		WHERE id = $1
	`, id, slugVal)
	if err != nil {
		return fmt.Errorf("update blog slug: %w", err)
	}
	return nil
}

// Delete removes a blog by ID.
func (s *BlogStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

// ListBlogs returns the slug migration's view of every blog row.
func (s *BlogStore) ListBlogs() ([]slug.BlogRecord, error) {
	rows, err := s.db.Query(`SELECT id, title, slug, slug_auto FROM blogs`)
	if err != nil {
		return nil, fmt.Errorf("list blog slugs: %w", err)
	}
	defer rows.Close()

	var records []slug.BlogRecord
	for rows.Next() {
		var r slug.BlogRecord
		if err := rows.Scan(&r.ID, &r.Title, &r.Slug, &r.SlugAuto); err != nil {
			return nil, fmt.Errorf("scan blog record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. The blog create path uses it to detect a slug race lost to a
// concurrent insert and re-resolve.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
