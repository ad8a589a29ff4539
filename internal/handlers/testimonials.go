// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"almohtaref/internal/cache"
	"almohtaref/internal/models"
)

// testimonialPayload is the request body for testimonial create and update.
type testimonialPayload struct {
	Name     string `json:"name"`
	NameAr   string `json:"nameAr"`
	Role     string `json:"role"`
	RoleAr   string `json:"roleAr"`
	Quote    string `json:"quote"`
	QuoteAr  string `json:"quoteAr"`
	Rating   int    `json:"rating"`
	Approved bool   `json:"approved"`
}

func (p *testimonialPayload) toModel() *models.Testimonial {
	return &models.Testimonial{
		Name:     p.Name,
		NameAr:   p.NameAr,
		Role:     p.Role,
		RoleAr:   p.RoleAr,
		Quote:    p.Quote,
		QuoteAr:  p.QuoteAr,
		Rating:   p.Rating,
		Approved: p.Approved,
	}
}

// ListTestimonials returns testimonials. The public site passes
// ?approved=true to narrow to the approved set; the default returns every
// row so the dashboard sees the moderation queue.
func (h *API) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	approvedOnly := queryFlag(r, "approved")
	h.serveCached(w, r, cache.CategoryTestimonials, func() (any, error) {
		items, err := h.testimonials.List(approvedOnly)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []models.Testimonial{}
		}
		return items, nil
	})
}

// visitorSubmission converts a public payload into an unapproved
// testimonial with the rating clamped into range. The approved flag in
// the payload is ignored on this path; only the dashboard approves.
func visitorSubmission(p *testimonialPayload) *models.Testimonial {
	t := p.toModel()
	t.Approved = false
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	return t
}

// CreateTestimonial creates a testimonial. Visitor submissions arrive
// unapproved and stay hidden until the dashboard approves them.
func (h *API) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonialPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Quote) == "" {
		writeError(w, http.StatusBadRequest, "Name and quote are required")
		return
	}

	created, err := h.testimonials.Create(visitorSubmission(&req))
	if err != nil {
		slog.Error("testimonial create failed", "name", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	h.invalidate(r, cache.CategoryTestimonials)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTestimonial updates a testimonial, including its approval state.
func (h *API) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	var req testimonialPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := req.toModel()
	item.ID = id
	updated, err := h.testimonials.Update(item)
	if err != nil {
		slog.Error("testimonial update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Testimonial not found")
		return
	}

	h.invalidate(r, cache.CategoryTestimonials)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTestimonial removes a testimonial.
func (h *API) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	if err := h.testimonials.Delete(id); err != nil {
		slog.Error("testimonial delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}

	h.invalidate(r, cache.CategoryTestimonials)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
