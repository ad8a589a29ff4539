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

// projectPayload is the request body for project create and update.
type projectPayload struct {
	Title         string   `json:"title"`
	TitleAr       string   `json:"titleAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Image         string   `json:"image"`
	GalleryImages []string `json:"galleryImages"`
	Tags          []string `json:"tags"`
	TagsAr        []string `json:"tagsAr"`
	Category      string   `json:"category"`
	CategoryAr    string   `json:"categoryAr"`
	Year          string   `json:"year"`
	Link          string   `json:"link"`
	Featured      bool     `json:"featured"`
}

func (p *projectPayload) toModel() *models.Project {
	return &models.Project{
		Title:         p.Title,
		TitleAr:       p.TitleAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Image:         p.Image,
		GalleryImages: models.StringList(p.GalleryImages),
		Tags:          models.StringList(p.Tags),
		TagsAr:        models.StringList(p.TagsAr),
		Category:      p.Category,
		CategoryAr:    p.CategoryAr,
		Year:          p.Year,
		Link:          p.Link,
		Featured:      p.Featured,
	}
}

// ListProjects returns portfolio projects. ?featured=true limits the list
// to featured ones.
func (h *API) ListProjects(w http.ResponseWriter, r *http.Request) {
	featuredOnly := queryFlag(r, "featured")
	h.serveCached(w, r, cache.CategoryProjects, func() (any, error) {
		projects, err := h.projects.List(featuredOnly)
		if err != nil {
			return nil, err
		}
		if projects == nil {
			projects = []models.Project{}
		}
		return projects, nil
	})
}

// GetProject returns a single project by ID.
func (h *API) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projects.FindByID(id)
	if err != nil {
		slog.Error("project lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	w.Header().Set("Cache-Control", cache.ControlHeader(cache.CategoryProjects, cache.IsAdminRequest(r)))
	writeJSON(w, http.StatusOK, project)
}

// CreateProject creates a portfolio project.
func (h *API) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	created, err := h.projects.Create(req.toModel())
	if err != nil {
		slog.Error("project create failed", "title", req.Title, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	h.invalidate(r, cache.CategoryProjects, created.Image)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProject updates a portfolio project.
func (h *API) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	existing, err := h.projects.FindByID(id)
	if err != nil {
		slog.Error("project lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	var req projectPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project := req.toModel()
	project.ID = id
	updated, err := h.projects.Update(project)
	if err != nil {
		slog.Error("project update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	h.invalidate(r, cache.CategoryProjects, existing.Image, updated.Image)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProject removes a portfolio project.
func (h *API) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	existing, err := h.projects.FindByID(id)
	if err != nil {
		slog.Error("project lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.projects.Delete(id); err != nil {
		slog.Error("project delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	h.invalidate(r, cache.CategoryProjects, existing.Image)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
