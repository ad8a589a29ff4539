// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// invalidate.go dispatches cache invalidations after content mutations.
// Invalidation is strictly best-effort: the mutation already committed, so
// a failure here is logged and swallowed, never surfaced to the client.
package cache

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
)

// PathInvalidator is the revalidation primitive the dispatcher drives.
// Implemented by ResponseCache.
type PathInvalidator interface {
	InvalidatePath(ctx context.Context, path string)
	InvalidatePrefix(ctx context.Context, prefix string)
}

// AuditLog records dispatched invalidations for debugging. Implemented by
// store.CacheLogStore.
type AuditLog interface {
	Log(category, target, action string)
}

// Invalidator marks cached content as stale after successful mutations.
type Invalidator struct {
	paths PathInvalidator
	audit AuditLog
}

// NewInvalidator creates an invalidation dispatcher. Either collaborator
// may be nil, in which case that side is skipped.
func NewInvalidator(paths PathInvalidator, audit AuditLog) *Invalidator {
	return &Invalidator{paths: paths, audit: audit}
}

// Category marks every cached response of a content category as stale.
func (inv *Invalidator) Category(ctx context.Context, cat Category) {
	if inv.paths != nil {
		inv.paths.InvalidatePrefix(ctx, cat.Path())
	}
	if inv.audit != nil {
		inv.audit.Log(string(cat), cat.Path(), "invalidate")
	}
	slog.Debug("category invalidated", "category", cat)
}

// Image marks the cached response for a single image reference as stale.
// The reference may be an absolute URL, an absolute path, or a bare image
// ID; it is normalized to a servable path first. Empty refs are a no-op.
func (inv *Invalidator) Image(ctx context.Context, ref string) {
	path := NormalizeImagePath(ref)
	if path == "" {
		return
	}
	if inv.paths != nil {
		inv.paths.InvalidatePath(ctx, path)
	}
	if inv.audit != nil {
		inv.audit.Log(string(CategoryImages), path, "invalidate")
	}
}

// NormalizeImagePath converts an image reference into the path its cached
// response lives under. Absolute URLs keep only their path component (a
// ref that won't parse is used as-is); path-shaped refs pass through; bare
// IDs get the image-serving route prefix. Empty in, empty out.
func NormalizeImagePath(ref string) string {
	if ref == "" {
		return ""
	}

	path := ref
	if strings.HasPrefix(ref, "http") {
		if u, err := url.Parse(ref); err == nil && u.Path != "" {
			path = u.Path
		}
	}

	if !strings.HasPrefix(path, "/") {
		path = CategoryImages.Path() + "/" + path
	}
	return path
}
