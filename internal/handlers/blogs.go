// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// blogs.go implements the blog API: CRUD with the slug pipeline
// (title-derived slugs, identity fallback, collision resolution), the
// Markdown rendering and SEO enrichment on save, and the one-time slug
// migration endpoint.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"almohtaref/internal/cache"
	"almohtaref/internal/markdown"
	"almohtaref/internal/models"
	"almohtaref/internal/seo"
	"almohtaref/internal/slug"
	"almohtaref/internal/store"
)

// slugRetryLimit bounds how often a blog insert is retried after losing a
// slug race to a concurrent writer.
const slugRetryLimit = 3

// blogPayload is the request body for blog create and update.
type blogPayload struct {
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Excerpt           string   `json:"excerpt"`
	Image             string   `json:"image"`
	Author            string   `json:"author"`
	Featured          bool     `json:"featured"`
	Slug              string   `json:"slug"`
	AutoSEO           *bool    `json:"autoSEO"`
	AutoInternalLinks *bool    `json:"autoInternalLinks"`
	MetaTitle         string   `json:"metaTitle"`
	MetaDescription   string   `json:"metaDescription"`
	MetaKeywords      []string `json:"metaKeywords"`
}

// ListBlogs returns all blog posts, newest first.
func (h *API) ListBlogs(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.CategoryBlogs, func() (any, error) {
		blogs, err := h.blogs.List()
		if err != nil {
			return nil, err
		}
		if blogs == nil {
			blogs = []models.Blog{}
		}
		return blogs, nil
	})
}

// GetBlog returns a single blog post. The path parameter is a slug, or a
// UUID for dashboard lookups of posts whose slug is being edited.
func (h *API) GetBlog(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "slug")

	var (
		blog *models.Blog
		err  error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		blog, err = h.blogs.FindByID(id)
	} else {
		blog, err = h.blogs.FindBySlug(ref)
	}
	if err != nil {
		slog.Error("blog lookup failed", "ref", ref, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if blog == nil {
		writeError(w, http.StatusNotFound, "Blog not found")
		return
	}

	w.Header().Set("Cache-Control", cache.ControlHeader(cache.CategoryBlogs, cache.IsAdminRequest(r)))
	writeJSON(w, http.StatusOK, blog)
}

// CreateBlog creates a blog post. The slug comes from the request if
// given, otherwise it is derived from the title, falling back to the
// identity form for untitled posts. Collisions get a numeric suffix; a
// race lost to a concurrent insert is resolved again and retried.
func (h *API) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req blogPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Slug) == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	id := uuid.New()
	blog := &models.Blog{
		ID:                id,
		Title:             req.Title,
		Content:           req.Content,
		Excerpt:           req.Excerpt,
		Image:             req.Image,
		Author:            req.Author,
		Featured:          req.Featured,
		AutoSEO:           boolOr(req.AutoSEO, true),
		AutoInternalLinks: boolOr(req.AutoInternalLinks, true),
		MetaTitle:         req.MetaTitle,
		MetaDescription:   req.MetaDescription,
		MetaKeywords:      models.StringList(req.MetaKeywords),
	}

	candidate := slug.Generate(strings.TrimSpace(req.Slug))
	if candidate == "" {
		candidate = slug.Generate(req.Title)
	}
	if candidate == "" {
		candidate = slug.Fallback(id)
		blog.SlugAuto = true
	}

	if err := h.renderBlog(blog); err != nil {
		slog.Error("blog rendering failed", "title", req.Title, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render blog content")
		return
	}

	var created *models.Blog
	for attempt := 0; ; attempt++ {
		resolved, err := slug.ResolveUnique(candidate, id, h.blogs.SlugExists)
		if err != nil {
			slog.Error("slug resolution failed", "candidate", candidate, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		blog.Slug = resolved

		created, err = h.blogs.Create(blog)
		if err == nil {
			break
		}
		if store.IsUniqueViolation(err) && attempt < slugRetryLimit {
			slog.Warn("slug race lost, re-resolving", "slug", resolved, "attempt", attempt+1)
			continue
		}
		slog.Error("blog create failed", "slug", resolved, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create blog")
		return
	}

	h.invalidate(r, cache.CategoryBlogs, created.Image)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBlog updates a blog post. An explicit slug in the request replaces
// the stored one (resolved for collisions and no longer marked
// auto-generated); an empty slug keeps it.
func (h *API) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	existing, err := h.blogs.FindByID(id)
	if err != nil {
		slog.Error("blog lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Blog not found")
		return
	}

	var req blogPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	oldImage := existing.Image
	existing.Title = req.Title
	existing.Content = req.Content
	existing.Excerpt = req.Excerpt
	existing.Image = req.Image
	existing.Author = req.Author
	existing.Featured = req.Featured
	existing.AutoSEO = boolOr(req.AutoSEO, existing.AutoSEO)
	existing.AutoInternalLinks = boolOr(req.AutoInternalLinks, existing.AutoInternalLinks)
	existing.MetaTitle = req.MetaTitle
	existing.MetaDescription = req.MetaDescription
	existing.MetaKeywords = models.StringList(req.MetaKeywords)

	if requested := slug.Generate(strings.TrimSpace(req.Slug)); requested != "" && requested != existing.Slug {
		resolved, err := slug.ResolveUnique(requested, id, h.blogs.SlugExists)
		if err != nil {
			slog.Error("slug resolution failed", "candidate", requested, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		existing.Slug = resolved
		existing.SlugAuto = false
	}

	if err := h.renderBlog(existing); err != nil {
		slog.Error("blog rendering failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render blog content")
		return
	}

	updated, err := h.blogs.Update(existing)
	if err != nil {
		slog.Error("blog update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update blog")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Blog not found")
		return
	}

	h.invalidate(r, cache.CategoryBlogs, oldImage, updated.Image)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteBlog removes a blog post.
func (h *API) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	existing, err := h.blogs.FindByID(id)
	if err != nil {
		slog.Error("blog lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Blog not found")
		return
	}

	if err := h.blogs.Delete(id); err != nil {
		slog.Error("blog delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete blog")
		return
	}

	h.invalidate(r, cache.CategoryBlogs, existing.Image)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// MigrateSlugs sweeps all blogs and replaces identity-based slugs with
// title-derived ones. Per-blog failures are reported in the result and do
// not abort the sweep; only a failure to start it at all returns an error.
func (h *API) MigrateSlugs(w http.ResponseWriter, r *http.Request) {
	result, err := slug.MigrateSlugs(h.blogs)
	if err != nil {
		slog.Error("slug migration failed to start", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to migrate slugs",
		})
		return
	}

	if len(result.Updated) > 0 {
		h.invalidate(r, cache.CategoryBlogs)
	}

	slog.Info("slug migration completed",
		"total", result.Total,
		"updated", len(result.Updated),
		"skipped", len(result.Skipped),
		"errors", len(result.Errors),
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Migration completed: %d updated, %d skipped, %d errors",
			len(result.Updated), len(result.Skipped), len(result.Errors)),
		"totalBlogs":   result.Total,
		"updatedCount": len(result.Updated),
		"skippedCount": len(result.Skipped),
		"errorsCount":  len(result.Errors),
		"details": map[string]any{
			"updated": result.Updated,
			"skipped": result.Skipped,
			"errors":  result.Errors,
		},
	})
}

// renderBlog produces the served HTML from the Markdown source, applies
// internal links when the post opts in, and fills empty SEO fields when
// automatic SEO is enabled.
func (h *API) renderBlog(b *models.Blog) error {
	html, err := markdown.ToHTML(b.Content)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	b.LinksApplied = nil
	if b.AutoInternalLinks {
		links, err := h.links.List(true)
		if err != nil {
			return fmt.Errorf("load internal links: %w", err)
		}
		var applied []string
		html, applied = seo.ApplyInternalLinks(html, links)
		b.LinksApplied = models.StringList(applied)
	}
	b.RenderedHTML = html

	if b.AutoSEO {
		if b.MetaTitle == "" {
			b.MetaTitle = b.Title
		}
		if b.MetaDescription == "" {
			b.MetaDescription = seo.AutoDescription(b.Excerpt, html)
		}
		if len(b.MetaKeywords) == 0 {
			b.MetaKeywords = models.StringList(seo.AutoKeywords(b.Title))
		}
	}
	return nil
}

// boolOr returns the pointed-to value, or fallback when the field was
// absent from the request.
func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
