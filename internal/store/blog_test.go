package store

import (
	"testing"

	"github.com/google/uuid"

	"almohtaref/internal/models"
	"almohtaref/internal/slug"
)

func TestBlogStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	t.Cleanup(func() { cleanBlogs(t, db, "store-test-garden-design") })

	created, err := s.Create(&models.Blog{
		ID:           uuid.New(),
		Title:        "Garden Design",
		Content:      "# Garden Design\n\nSome content.",
		Slug:         "store-test-garden-design",
		AutoSEO:      true,
		MetaKeywords: models.StringList{"garden", "design"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	found, err := s.FindBySlug("store-test-garden-design")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected to find blog by slug")
	}
	if found.Title != "Garden Design" {
		t.Errorf("Title = %q, want %q", found.Title, "Garden Design")
	}
	if len(found.MetaKeywords) != 2 {
		t.Errorf("MetaKeywords = %v, want 2 entries", found.MetaKeywords)
	}

	byID, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID == nil || byID.Slug != created.Slug {
		t.Errorf("FindByID returned %+v, want slug %q", byID, created.Slug)
	}
}

func TestBlogStoreFindMissingReturnsNil(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	b, err := s.FindBySlug("store-test-does-not-exist")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if b != nil {
		t.Errorf("expected nil for missing slug, got %+v", b)
	}
}

func TestBlogStoreSlugExistsExcludesSelf(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	t.Cleanup(func() { cleanBlogs(t, db, "store-test-exists") })

	created, err := s.Create(&models.Blog{
		ID:      uuid.New(),
		Title:   "Exists",
		Content: "x",
		Slug:    "store-test-exists",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A blog's own slug does not count as taken for itself.
	taken, err := s.SlugExists("store-test-exists", created.ID)
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if taken {
		t.Error("slug should not be taken when excluding its owner")
	}

	// It does count as taken for any other blog.
	taken, err = s.SlugExists("store-test-exists", uuid.New())
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if !taken {
		t.Error("slug should be taken for a different blog")
	}
}

func TestBlogStoreDuplicateSlugIsUniqueViolation(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	t.Cleanup(func() { cleanBlogs(t, db, "store-test-dup") })

	if _, err := s.Create(&models.Blog{
		ID: uuid.New(), Title: "First", Content: "x", Slug: "store-test-dup",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := s.Create(&models.Blog{
		ID: uuid.New(), Title: "Second", Content: "x", Slug: "store-test-dup",
	})
	if err == nil {
		t.Fatal("expected duplicate slug insert to fail")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation = false for %v", err)
	}
}

func TestBlogStoreUpdateSlugClearsAutoMarker(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	id := uuid.New()
	fallback := slug.Fallback(id)
	t.Cleanup(func() { cleanBlogs(t, db, fallback, "store-test-renamed") })

	if _, err := s.Create(&models.Blog{
		ID: id, Title: "Renamed", Content: "x", Slug: fallback, SlugAuto: true,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.UpdateSlug(id, "store-test-renamed"); err != nil {
		t.Fatalf("UpdateSlug failed: %v", err)
	}

	b, err := s.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if b.Slug != "store-test-renamed" {
		t.Errorf("Slug = %q, want %q", b.Slug, "store-test-renamed")
	}
	if b.SlugAuto {
		t.Error("SlugAuto should be cleared after an explicit slug update")
	}
}

func TestBlogStoreListBlogsFeedsMigration(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	id := uuid.New()
	fallback := slug.Fallback(id)
	t.Cleanup(func() { cleanBlogs(t, db, fallback, "migration-feed-title") })

	if _, err := s.Create(&models.Blog{
		ID: id, Title: "Migration Feed Title", Content: "x",
		Slug: fallback, SlugAuto: true,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	records, err := s.ListBlogs()
	if err != nil {
		t.Fatalf("ListBlogs failed: %v", err)
	}
	var found *slug.BlogRecord
	for i := range records {
		if records[i].ID == id {
			found = &records[i]
		}
	}
	if found == nil {
		t.Fatal("expected ListBlogs to include the created blog")
	}
	if !found.SlugAuto || found.Slug != fallback {
		t.Errorf("record = %+v, want auto fallback slug %q", found, fallback)
	}
}
