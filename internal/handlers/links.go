// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// links.go manages the keyword-to-URL table that drives automatic
// internal linking in blog posts, plus the invalidation audit log the
// dashboard shows for cache debugging.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"almohtaref/internal/cache"
	"almohtaref/internal/models"
	"almohtaref/internal/store"
)

// internalLinkPayload is the request body for link create and update.
type internalLinkPayload struct {
	Keyword string `json:"keyword"`
	URL     string `json:"url"`
	Enabled *bool  `json:"enabled"`
}

// ListInternalLinks returns the link table. The dashboard sees the whole
// table; blog rendering only uses enabled rows internally.
func (h *API) ListInternalLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.List(false)
	if err != nil {
		slog.Error("internal links list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if links == nil {
		links = []models.InternalLink{}
	}
	writeJSON(w, http.StatusOK, links)
}

// CreateInternalLink adds a keyword mapping. Existing blog posts keep
// their rendered HTML until they are next saved.
func (h *API) CreateInternalLink(w http.ResponseWriter, r *http.Request) {
	var req internalLinkPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Keyword) == "" || strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "Keyword and URL are required")
		return
	}

	created, err := h.links.Create(&models.InternalLink{
		Keyword: strings.TrimSpace(req.Keyword),
		URL:     strings.TrimSpace(req.URL),
		Enabled: boolOr(req.Enabled, true),
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			writeError(w, http.StatusConflict, "Keyword already exists")
			return
		}
		slog.Error("internal link create failed", "keyword", req.Keyword, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create internal link")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateInternalLink updates a keyword mapping.
func (h *API) UpdateInternalLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid link ID")
		return
	}

	var req internalLinkPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.links.Update(&models.InternalLink{
		ID:      id,
		Keyword: strings.TrimSpace(req.Keyword),
		URL:     strings.TrimSpace(req.URL),
		Enabled: boolOr(req.Enabled, true),
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			writeError(w, http.StatusConflict, "Keyword already exists")
			return
		}
		slog.Error("internal link update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update internal link")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Internal link not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteInternalLink removes a keyword mapping.
func (h *API) DeleteInternalLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid link ID")
		return
	}

	if err := h.links.Delete(id); err != nil {
		slog.Error("internal link delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete internal link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// CacheLogEntries returns the most recent cache invalidation events.
func (h *API) CacheLogEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.cacheLog.RecentEntries(50)
	if err != nil {
		slog.Error("cache log lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if entries == nil {
		entries = []store.CacheLogEntry{}
	}
	w.Header().Set("Cache-Control", cache.NoStore)
	writeJSON(w, http.StatusOK, entries)
}
