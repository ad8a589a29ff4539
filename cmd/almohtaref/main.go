// Package main is the entry point for the Al Mohtaref content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"almohtaref/internal/cache"
	"almohtaref/internal/config"
	"almohtaref/internal/database"
	"almohtaref/internal/handlers"
	"almohtaref/internal/router"
	"almohtaref/internal/storage"
	"almohtaref/internal/store"
)

// newLogger builds the process logger: verbose text output in
// development, JSON at info level everywhere else.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible response cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Connect to S3-compatible object storage (optional — the API works
	// without it, with image uploads disabled).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — image uploads disabled")
	}

	// Initialize data stores.
	blogStore := store.NewBlogStore(db)
	projectStore := store.NewProjectStore(db)
	serviceStore := store.NewServiceStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	bannerStore := store.NewBannerStore(db)
	galleryStore := store.NewGalleryStore(db)
	homeSlideStore := store.NewHomeSlideStore(db)
	pageAssetStore := store.NewPageAssetStore(db)
	linkStore := store.NewInternalLinkStore(db)
	mediaStore := store.NewMediaStore(db)
	cacheLogStore := store.NewCacheLogStore(db)

	// Response cache and the invalidation dispatcher that keeps it fresh.
	responseCache := cache.NewResponseCache(valkeyClient)
	invalidator := cache.NewInvalidator(responseCache, cacheLogStore)

	api := handlers.New(handlers.Deps{
		Config:       cfg,
		Blogs:        blogStore,
		Projects:     projectStore,
		Services:     serviceStore,
		Testimonials: testimonialStore,
		Banners:      bannerStore,
		Gallery:      galleryStore,
		HomeSlides:   homeSlideStore,
		PageAssets:   pageAssetStore,
		Links:        linkStore,
		Media:        mediaStore,
		CacheLog:     cacheLogStore,
		Responses:    responseCache,
		Invalidator:  invalidator,
		Storage:      storageClient,
	})

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, cfg.AdminKey)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// multipart image uploads to S3.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
