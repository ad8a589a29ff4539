// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"almohtaref/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "almohtaref")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "almohtaref")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanBlogs removes test blogs by slug. Call in t.Cleanup().
func cleanBlogs(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM blogs WHERE slug = $1", slug)
	}
}

// cleanProjects removes test projects by title. Call in t.Cleanup().
func cleanProjects(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM projects WHERE title = $1", title)
	}
}

// cleanTestimonials removes test testimonials by name. Call in t.Cleanup().
func cleanTestimonials(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM testimonials WHERE name = $1", name)
	}
}

// cleanBanners removes test banners by page. Call in t.Cleanup().
func cleanBanners(t *testing.T, db *sql.DB, pages ...string) {
	t.Helper()
	for _, page := range pages {
		db.Exec("DELETE FROM banners WHERE page = $1", page)
	}
}

// cleanPageAssets removes test asset slots by page. Call in t.Cleanup().
func cleanPageAssets(t *testing.T, db *sql.DB, pages ...string) {
	t.Helper()
	for _, page := range pages {
		db.Exec("DELETE FROM page_assets WHERE page = $1", page)
	}
}
