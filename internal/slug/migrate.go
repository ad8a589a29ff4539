// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// migrate.go implements the one-time sweep that replaces identity-based
// blog slugs ("blog-<id>") with title-derived ones. Blogs imported from the
// old site were created before title-based slugging existed and still carry
// the fallback form.
package slug

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BlogRecord is the view of a blog row the migration needs.
type BlogRecord struct {
	ID       uuid.UUID
	Title    string
	Slug     string
	SlugAuto bool
}

// MigrationSource is the store surface the migration sweeps over.
// UpdateSlug must clear the auto-generated marker along with the slug,
// which is what makes a second run a no-op.
type MigrationSource interface {
	ListBlogs() ([]BlogRecord, error)
	SlugExists(slug string, exclude uuid.UUID) (bool, error)
	UpdateSlug(id uuid.UUID, slug string) error
}

// MigrationResult is the audit report of one migration run. Every blog
// considered lands in exactly one of the three lists.
type MigrationResult struct {
	Total   int
	Updated []string
	Skipped []string
	Errors  []string
}

// MigrateSlugs replaces identity-based blog slugs with title-derived ones.
// A row is eligible when it is marked auto-generated (or its slug still has
// the identity shape from before the marker column existed) and a slug can
// be derived from its title. A failure on one row is recorded and the sweep
// continues with the next; only a failure to list the blogs at all aborts.
func MigrateSlugs(src MigrationSource) (*MigrationResult, error) {
	blogs, err := src.ListBlogs()
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	res := &MigrationResult{Total: len(blogs)}
	for _, b := range blogs {
		if !b.SlugAuto && !IsFallback(b.Slug) {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s (slug: %s)", b.Title, b.Slug))
			continue
		}
		if strings.TrimSpace(b.Title) == "" {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s - no title to derive a slug from", b.ID))
			continue
		}

		candidate := Generate(b.Title)
		if candidate == "" {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s - could not generate slug", b.Title))
			continue
		}

		unique, err := ResolveUnique(candidate, b.ID, src.SlugExists)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", b.Title, err))
			continue
		}
		if err := src.UpdateSlug(b.ID, unique); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", b.Title, err))
			continue
		}
		res.Updated = append(res.Updated, fmt.Sprintf("%s: %s → %s", b.Title, b.Slug, unique))
	}
	return res, nil
}
