// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for bilingual
// (Arabic/English) blog titles, uniqueness resolution against the store,
// and the one-time migration that backfills identity-based slugs.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// disallowed matches anything that isn't an ASCII word character,
	// whitespace, a hyphen, or an Arabic letter (U+0600–U+06FF).
	disallowed = regexp.MustCompile(`[^\w\s\x{0600}-\x{06FF}-]`)
	// separators matches runs of whitespace and underscores.
	separators = regexp.MustCompile(`[\s_]+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given title. Arabic letters
// are preserved as-is (no transliteration); punctuation and symbols are
// stripped; whitespace and underscore runs become single hyphens.
// Example: "نصائح العناية بالحديقة" → "نصائح-العناية-بالحديقة".
//
// Returns "" when nothing survives the stripping — callers must fall back
// to the identity-based slug from Fallback.
func Generate(title string) string {
	result := strings.TrimSpace(title)
	result = disallowed.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Fallback returns the identity-based slug used when no slug can be derived
// from a title. Stable per blog, so the uniqueness loop terminates on the
// first check.
func Fallback(id uuid.UUID) string {
	return "blog-" + id.String()
}

var (
	// uuidSlug matches the current identity-slug shape ("blog-" + UUID).
	uuidSlug = regexp.MustCompile(`(?i)^blog-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	// legacyIDSlug matches identity slugs from the imported dataset, where
	// document IDs were 24 hex characters.
	legacyIDSlug = regexp.MustCompile(`(?i)^blog-[a-f0-9]{24}$`)
)

// IsFallback reports whether s has the shape of an identity-based slug:
// "blog-" followed by either a UUID or a legacy 24-hex-character ID.
// Rows created after the slug_auto column exists carry an explicit marker
// instead; this shape check only covers rows that predate it.
func IsFallback(s string) bool {
	return uuidSlug.MatchString(s) || legacyIDSlug.MatchString(s)
}
