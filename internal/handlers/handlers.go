// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP API. Public content reads are
// served through the Valkey response cache with per-category Cache-Control
// headers; admin-classified requests bypass caching entirely. Mutations
// dispatch cache invalidation after the database write commits.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"almohtaref/internal/cache"
	"almohtaref/internal/config"
	"almohtaref/internal/storage"
	"almohtaref/internal/store"
)

// API bundles the stores and collaborators the HTTP handlers need.
type API struct {
	cfg *config.Config

	blogs        *store.BlogStore
	projects     *store.ProjectStore
	services     *store.ServiceStore
	testimonials *store.TestimonialStore
	banners      *store.BannerStore
	gallery      *store.GalleryStore
	homeSlides   *store.HomeSlideStore
	pageAssets   *store.PageAssetStore
	links        *store.InternalLinkStore
	media        *store.MediaStore
	cacheLog     *store.CacheLogStore

	responses   *cache.ResponseCache
	invalidator *cache.Invalidator
	storage     *storage.Client
}

// Deps carries the collaborators used to construct an API. ResponseCache,
// Invalidator, and Storage may be nil; the corresponding behavior is
// skipped (no response caching, no invalidation fan-out, uploads disabled).
type Deps struct {
	Config *config.Config

	Blogs        *store.BlogStore
	Projects     *store.ProjectStore
	Services     *store.ServiceStore
	Testimonials *store.TestimonialStore
	Banners      *store.BannerStore
	Gallery      *store.GalleryStore
	HomeSlides   *store.HomeSlideStore
	PageAssets   *store.PageAssetStore
	Links        *store.InternalLinkStore
	Media        *store.MediaStore
	CacheLog     *store.CacheLogStore

	Responses   *cache.ResponseCache
	Invalidator *cache.Invalidator
	Storage     *storage.Client
}

// New creates the API handler set.
func New(d Deps) *API {
	return &API{
		cfg:          d.Config,
		blogs:        d.Blogs,
		projects:     d.Projects,
		services:     d.Services,
		testimonials: d.Testimonials,
		banners:      d.Banners,
		gallery:      d.Gallery,
		homeSlides:   d.HomeSlides,
		pageAssets:   d.PageAssets,
		links:        d.Links,
		media:        d.Media,
		cacheLog:     d.CacheLog,
		responses:    d.Responses,
		invalidator:  d.Invalidator,
		storage:      d.Storage,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// serveCached handles a public content GET. The Cache-Control header is
// set per category, admin requests bypass the response cache on both
// read and write, and cache misses fall through to load and repopulate.
func (h *API) serveCached(w http.ResponseWriter, r *http.Request, cat cache.Category, load func() (any, error)) {
	isAdmin := cache.IsAdminRequest(r)
	w.Header().Set("Cache-Control", cache.ControlHeader(cat, isAdmin))
	w.Header().Set("Content-Type", "application/json")

	key := r.URL.RequestURI()
	if !isAdmin && h.responses != nil {
		if body, ok := h.responses.Get(r.Context(), key); ok {
			w.Write(body)
			return
		}
	}

	data, err := load()
	if err != nil {
		slog.Error("content load failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal response", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !isAdmin && h.responses != nil {
		h.responses.Set(r.Context(), key, body, cache.Freshness(cat))
	}
	w.Write(body)
}

// invalidate fans out category invalidation after a successful mutation.
// Image refs touched by the mutation are invalidated individually.
func (h *API) invalidate(r *http.Request, cat cache.Category, imageRefs ...string) {
	if h.invalidator == nil {
		return
	}
	ctx := r.Context()
	h.invalidator.Category(ctx, cat)
	for _, ref := range imageRefs {
		h.invalidator.Image(ctx, ref)
	}
}

// decodeJSON decodes a request body into dst. Unknown fields pass through;
// the dashboard sends superset payloads.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// queryFlag reports whether the named query parameter is set to "true".
// List endpoints use these flags to narrow results; absent or any other
// value leaves the list unfiltered.
func queryFlag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}
