// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// site.go implements the site-chrome API: page banners, the portfolio
// gallery strip, homepage carousel slides, and per-page asset slots.
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

// ListBanners returns page banners. ?page= narrows to one page's banner.
func (h *API) ListBanners(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	h.serveCached(w, r, cache.CategoryBanners, func() (any, error) {
		if page != "" {
			banner, err := h.banners.FindByPage(page)
			if err != nil {
				return nil, err
			}
			return banner, nil
		}
		banners, err := h.banners.List()
		if err != nil {
			return nil, err
		}
		if banners == nil {
			banners = []models.Banner{}
		}
		return banners, nil
	})
}

// UpsertBanner sets the banner image of a page, replacing any existing one.
func (h *API) UpsertBanner(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page  string `json:"page"`
		Image string `json:"image"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Page) == "" || strings.TrimSpace(req.Image) == "" {
		writeError(w, http.StatusBadRequest, "Page and image are required")
		return
	}

	banner, err := h.banners.Upsert(req.Page, req.Image)
	if err != nil {
		slog.Error("banner upsert failed", "page", req.Page, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save banner")
		return
	}

	h.invalidate(r, cache.CategoryBanners, banner.Image)
	writeJSON(w, http.StatusOK, banner)
}

// DeleteBanner removes a page banner. The path parameter is either the
// banner's UUID or the page name it is assigned to; the dashboard sends
// the page name.
func (h *API) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "id")

	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		err = h.banners.Delete(id)
	} else {
		err = h.banners.DeleteByPage(param)
	}
	if err != nil {
		slog.Error("banner delete failed", "banner", param, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete banner")
		return
	}

	h.invalidate(r, cache.CategoryBanners)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListGallery returns the gallery images in display order.
func (h *API) ListGallery(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.CategoryGallery, func() (any, error) {
		images, err := h.gallery.List()
		if err != nil {
			return nil, err
		}
		if images == nil {
			images = []models.GalleryImage{}
		}
		return images, nil
	})
}

// galleryPayload is the request body for gallery image create and update.
type galleryPayload struct {
	Image     string `json:"image"`
	Alt       string `json:"alt"`
	AltAr     string `json:"altAr"`
	SortOrder int    `json:"order"`
}

// CreateGalleryImage adds an image to the gallery.
func (h *API) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req galleryPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		writeError(w, http.StatusBadRequest, "Image is required")
		return
	}

	created, err := h.gallery.Create(&models.GalleryImage{
		Image: req.Image, Alt: req.Alt, AltAr: req.AltAr, SortOrder: req.SortOrder,
	})
	if err != nil {
		slog.Error("gallery create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add gallery image")
		return
	}

	h.invalidate(r, cache.CategoryGallery, created.Image)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateGalleryImage updates a gallery entry.
func (h *API) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid gallery image ID")
		return
	}

	var req galleryPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.gallery.Update(&models.GalleryImage{
		ID: id, Image: req.Image, Alt: req.Alt, AltAr: req.AltAr, SortOrder: req.SortOrder,
	})
	if err != nil {
		slog.Error("gallery update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update gallery image")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Gallery image not found")
		return
	}

	h.invalidate(r, cache.CategoryGallery, updated.Image)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteGalleryImage removes a gallery entry.
func (h *API) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid gallery image ID")
		return
	}

	existing, err := h.gallery.FindByID(id)
	if err != nil {
		slog.Error("gallery lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Gallery image not found")
		return
	}

	if err := h.gallery.Delete(id); err != nil {
		slog.Error("gallery delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete gallery image")
		return
	}

	h.invalidate(r, cache.CategoryGallery, existing.Image)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListHomeSlides returns carousel slides. The public carousel passes
// ?active=true to narrow to active slides; the default returns every row
// so the dashboard can manage inactive ones.
func (h *API) ListHomeSlides(w http.ResponseWriter, r *http.Request) {
	activeOnly := queryFlag(r, "active")
	h.serveCached(w, r, cache.CategoryHomeSlides, func() (any, error) {
		slides, err := h.homeSlides.List(activeOnly)
		if err != nil {
			return nil, err
		}
		if slides == nil {
			slides = []models.HomeSlide{}
		}
		return slides, nil
	})
}

// homeSlidePayload is the request body for slide create and update.
type homeSlidePayload struct {
	Title      string `json:"title"`
	TitleAr    string `json:"titleAr"`
	Subtitle   string `json:"subtitle"`
	SubtitleAr string `json:"subtitleAr"`
	Image      string `json:"image"`
	SortOrder  int    `json:"order"`
	IsActive   *bool  `json:"isActive"`
}

// CreateHomeSlide adds a carousel slide. New slides start active unless
// the request says otherwise.
func (h *API) CreateHomeSlide(w http.ResponseWriter, r *http.Request) {
	var req homeSlidePayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		writeError(w, http.StatusBadRequest, "Image is required")
		return
	}

	created, err := h.homeSlides.Create(&models.HomeSlide{
		Title: req.Title, TitleAr: req.TitleAr,
		Subtitle: req.Subtitle, SubtitleAr: req.SubtitleAr,
		Image: req.Image, SortOrder: req.SortOrder,
		IsActive: boolOr(req.IsActive, true),
	})
	if err != nil {
		slog.Error("home slide create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add slide")
		return
	}

	h.invalidate(r, cache.CategoryHomeSlides, created.Image)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateHomeSlide updates a carousel slide.
func (h *API) UpdateHomeSlide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid slide ID")
		return
	}

	var req homeSlidePayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.homeSlides.Update(&models.HomeSlide{
		ID: id, Title: req.Title, TitleAr: req.TitleAr,
		Subtitle: req.Subtitle, SubtitleAr: req.SubtitleAr,
		Image: req.Image, SortOrder: req.SortOrder,
		IsActive: boolOr(req.IsActive, true),
	})
	if err != nil {
		slog.Error("home slide update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update slide")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Slide not found")
		return
	}

	h.invalidate(r, cache.CategoryHomeSlides, updated.Image)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteHomeSlide removes a carousel slide.
func (h *API) DeleteHomeSlide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid slide ID")
		return
	}

	existing, err := h.homeSlides.FindByID(id)
	if err != nil {
		slog.Error("home slide lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Slide not found")
		return
	}

	if err := h.homeSlides.Delete(id); err != nil {
		slog.Error("home slide delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete slide")
		return
	}

	h.invalidate(r, cache.CategoryHomeSlides, existing.Image)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListPageAssets returns asset slots, filtered by ?page= and ?section=.
func (h *API) ListPageAssets(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	section := r.URL.Query().Get("section")
	h.serveCached(w, r, cache.CategoryPageAssets, func() (any, error) {
		assets, err := h.pageAssets.List(page, section)
		if err != nil {
			return nil, err
		}
		if assets == nil {
			assets = []models.PageAsset{}
		}
		return assets, nil
	})
}

// pageAssetPayload is the request body for asset slot writes.
type pageAssetPayload struct {
	Page      string `json:"page"`
	Section   string `json:"section"`
	Key       string `json:"key"`
	ImageURL  string `json:"imageUrl"`
	Alt       string `json:"alt"`
	AltAr     string `json:"altAr"`
	Text      string `json:"text"`
	TextAr    string `json:"textAr"`
	SortOrder int    `json:"order"`
}

func (p *pageAssetPayload) toModel() *models.PageAsset {
	return &models.PageAsset{
		Page: p.Page, Section: p.Section, Key: p.Key,
		ImageURL: p.ImageURL, Alt: p.Alt, AltAr: p.AltAr,
		Text: p.Text, TextAr: p.TextAr, SortOrder: p.SortOrder,
	}
}

// UpsertPageAsset sets the content of an asset slot addressed by
// (page, section, key), creating the slot if it is new.
func (h *API) UpsertPageAsset(w http.ResponseWriter, r *http.Request) {
	var req pageAssetPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Page == "" || req.Section == "" || req.Key == "" {
		writeError(w, http.StatusBadRequest, "Page, section, and key are required")
		return
	}

	asset, err := h.pageAssets.Upsert(req.toModel())
	if err != nil {
		slog.Error("page asset upsert failed", "page", req.Page, "key", req.Key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save page asset")
		return
	}

	h.invalidate(r, cache.CategoryPageAssets, asset.ImageURL)
	writeJSON(w, http.StatusOK, asset)
}

// UpdatePageAsset rewrites an existing asset slot by ID.
func (h *API) UpdatePageAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page asset ID")
		return
	}

	var req pageAssetPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Page == "" || req.Section == "" || req.Key == "" {
		writeError(w, http.StatusBadRequest, "Page, section, and key are required")
		return
	}

	asset := req.toModel()
	asset.ID = id
	updated, err := h.pageAssets.Update(asset)
	if err != nil {
		slog.Error("page asset update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update page asset")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Page asset not found")
		return
	}

	h.invalidate(r, cache.CategoryPageAssets, updated.ImageURL)
	writeJSON(w, http.StatusOK, updated)
}

// DeletePageAsset removes an asset slot.
func (h *API) DeletePageAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page asset ID")
		return
	}

	if err := h.pageAssets.Delete(id); err != nil {
		slog.Error("page asset delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete page asset")
		return
	}

	h.invalidate(r, cache.CategoryPageAssets)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
