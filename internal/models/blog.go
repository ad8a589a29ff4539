// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog represents a blog post. Content is authored in Markdown (legacy
// posts carry raw HTML, which passes through rendering unchanged);
// RenderedHTML is the served form with internal links applied.
type Blog struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	RenderedHTML string    `json:"renderedHtml"`
	Excerpt      string    `json:"excerpt"`
	Image        string    `json:"image"`
	Author       string    `json:"author"`
	Featured     bool      `json:"featured"`

	// Slug is unique across all blogs. SlugAuto marks slugs assigned by
	// the identity fallback scheme ("blog-<id>") rather than derived from
	// the title; the slug migration targets exactly those rows.
	Slug     string `json:"slug"`
	SlugAuto bool   `json:"slugAuto"`

	// SEO fields. When AutoSEO is set, empty meta fields are filled from
	// the title/excerpt at save time.
	AutoSEO           bool       `json:"autoSEO"`
	AutoInternalLinks bool       `json:"autoInternalLinks"`
	MetaTitle         string     `json:"metaTitle"`
	MetaDescription   string     `json:"metaDescription"`
	MetaKeywords      StringList `json:"metaKeywords"`
	LinksApplied      StringList `json:"internalLinksApplied"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
