// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// content API. Public content reads are rate limited; every mutating
// route requires the shared-secret admin key header.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"almohtaref/internal/handlers"
	"almohtaref/internal/middleware"
)

// publicRateLimit is the per-IP request budget for the public API.
const (
	publicRateLimit  = 120
	publicRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, adminKey string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no rate limit, no auth.
	r.Get("/health", healthHandler)

	limiter := middleware.NewRateLimiter(publicRateLimit, publicRateWindow)

	r.Route("/api", func(r chi.Router) {
		// Public reads and visitor submissions.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)

			r.Post("/auth/login", api.Login)

			r.Get("/blogs", api.ListBlogs)
			r.Get("/blogs/{slug}", api.GetBlog)
			r.Get("/blogs/slug/{slug}", api.GetBlog)

			r.Get("/projects", api.ListProjects)
			r.Get("/projects/{id}", api.GetProject)

			r.Get("/services", api.ListServices)
			r.Get("/services/{id}", api.GetService)

			r.Get("/testimonials", api.ListTestimonials)
			r.Post("/testimonials", api.CreateTestimonial)

			r.Get("/banners", api.ListBanners)
			r.Get("/gallery", api.ListGallery)
			r.Get("/home-slides", api.ListHomeSlides)
			r.Get("/page-assets", api.ListPageAssets)

			r.Get("/images", api.ListImages)
			r.Get("/images/{id}", api.ServeImage)
		})

		// Mutations — require the admin key header.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminKey(adminKey))

			r.Post("/blogs", api.CreateBlog)
			r.Post("/blogs/migrate-slugs", api.MigrateSlugs)
			r.Put("/blogs/{id}", api.UpdateBlog)
			r.Delete("/blogs/{id}", api.DeleteBlog)

			r.Post("/projects", api.CreateProject)
			r.Put("/projects/{id}", api.UpdateProject)
			r.Delete("/projects/{id}", api.DeleteProject)

			r.Post("/services", api.CreateService)
			r.Put("/services/{id}", api.UpdateService)
			r.Delete("/services/{id}", api.DeleteService)

			r.Put("/testimonials/{id}", api.UpdateTestimonial)
			r.Delete("/testimonials/{id}", api.DeleteTestimonial)

			r.Post("/banners", api.UpsertBanner)
			r.Delete("/banners/{id}", api.DeleteBanner)

			r.Post("/gallery", api.CreateGalleryImage)
			r.Put("/gallery/{id}", api.UpdateGalleryImage)
			r.Delete("/gallery/{id}", api.DeleteGalleryImage)

			r.Post("/home-slides", api.CreateHomeSlide)
			r.Put("/home-slides/{id}", api.UpdateHomeSlide)
			r.Delete("/home-slides/{id}", api.DeleteHomeSlide)

			r.Post("/page-assets", api.UpsertPageAsset)
			r.Put("/page-assets/{id}", api.UpdatePageAsset)
			r.Delete("/page-assets/{id}", api.DeletePageAsset)

			r.Get("/internal-links", api.ListInternalLinks)
			r.Post("/internal-links", api.CreateInternalLink)
			r.Put("/internal-links/{id}", api.UpdateInternalLink)
			r.Delete("/internal-links/{id}", api.DeleteInternalLink)

			r.Post("/images", api.UploadImage)
			r.Delete("/images/{id}", api.DeleteImage)

			r.Get("/admin/cache-log", api.CacheLogEntries)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
