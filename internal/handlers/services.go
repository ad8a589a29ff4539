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

// servicePayload is the request body for service create and update.
type servicePayload struct {
	Title         string   `json:"title"`
	TitleAr       string   `json:"titleAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Icon          string   `json:"icon"`
	Image         string   `json:"image"`
	Features      []string `json:"features"`
	FeaturesAr    []string `json:"featuresAr"`
	Featured      bool     `json:"featured"`
}

func (p *servicePayload) toModel() *models.Service {
	return &models.Service{
		Title:         p.Title,
		TitleAr:       p.TitleAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Icon:          p.Icon,
		Image:         p.Image,
		Features:      models.StringList(p.Features),
		FeaturesAr:    models.StringList(p.FeaturesAr),
		Featured:      p.Featured,
	}
}

// ListServices returns all service offerings.
func (h *API) ListServices(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.CategoryServices, func() (any, error) {
		services, err := h.services.List()
		if err != nil {
			return nil, err
		}
		if services == nil {
			services = []models.Service{}
		}
		return services, nil
	})
}

// GetService returns a single service by ID.
func (h *API) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	service, err := h.services.FindByID(id)
	if err != nil {
		slog.Error("service lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if service == nil {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}

	w.Header().Set("Cache-Control", cache.ControlHeader(cache.CategoryServices, cache.IsAdminRequest(r)))
	writeJSON(w, http.StatusOK, service)
}

// CreateService creates a service offering.
func (h *API) CreateService(w http.ResponseWriter, r *http.Request) {
	var req servicePayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	created, err := h.services.Create(req.toModel())
	if err != nil {
		slog.Error("service create failed", "title", req.Title, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create service")
		return
	}

	h.invalidate(r, cache.CategoryServices, created.Image)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateService updates a service offering.
func (h *API) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	existing, err := h.services.FindByID(id)
	if err != nil {
		slog.Error("service lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}

	var req servicePayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	service := req.toModel()
	service.ID = id
	updated, err := h.services.Update(service)
	if err != nil {
		slog.Error("service update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update service")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}

	h.invalidate(r, cache.CategoryServices, existing.Image, updated.Image)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteService removes a service offering.
func (h *API) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	existing, err := h.services.FindByID(id)
	if err != nil {
		slog.Error("service lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Service not found")
		return
	}

	if err := h.services.Delete(id); err != nil {
		slog.Error("service delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	h.invalidate(r, cache.CategoryServices, existing.Image)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
