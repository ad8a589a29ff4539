package store

import (
	"testing"

	"github.com/google/uuid"

	"almohtaref/internal/models"
)

func TestProjectStoreFeaturedFilter(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	t.Cleanup(func() { cleanProjects(t, db, "store-test-featured", "store-test-plain") })

	featured, err := s.Create(&models.Project{
		Title: "store-test-featured", TitleAr: "مشروع مميز",
		Description: "d", DescriptionAr: "d", Image: "/api/images/a",
		Category: "villa", CategoryAr: "فيلا", Year: "2025", Featured: true,
		Tags: models.StringList{"garden"},
	})
	if err != nil {
		t.Fatalf("Create featured failed: %v", err)
	}
	if _, err := s.Create(&models.Project{
		Title: "store-test-plain", TitleAr: "مشروع عادي",
		Description: "d", DescriptionAr: "d", Image: "/api/images/b",
		Category: "villa", CategoryAr: "فيلا", Year: "2025",
	}); err != nil {
		t.Fatalf("Create plain failed: %v", err)
	}

	list, err := s.List(true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, p := range list {
		if !p.Featured {
			t.Errorf("featured-only list contains %q with Featured=false", p.Title)
		}
	}

	got, err := s.FindByID(featured.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got == nil || got.Tags[0] != "garden" {
		t.Errorf("FindByID = %+v, want tags [garden]", got)
	}
}

func TestTestimonialStoreApprovedFilter(t *testing.T) {
	db := testDB(t)
	s := NewTestimonialStore(db)

	t.Cleanup(func() { cleanTestimonials(t, db, "store-test-pending") })

	created, err := s.Create(&models.Testimonial{
		Name: "store-test-pending", Quote: "Great work", Rating: 5,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	approved, err := s.List(true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, m := range approved {
		if m.ID == created.ID {
			t.Error("unapproved testimonial leaked into the approved list")
		}
	}

	created.Approved = true
	if _, err := s.Update(created); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	approved, err = s.List(true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var found bool
	for _, m := range approved {
		if m.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("approved testimonial missing from the approved list")
	}
}

func TestBannerStoreUpsertReplacesPerPage(t *testing.T) {
	db := testDB(t)
	s := NewBannerStore(db)

	t.Cleanup(func() { cleanBanners(t, db, "store-test-page") })

	first, err := s.Upsert("store-test-page", "/api/images/one")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	second, err := s.Upsert("store-test-page", "/api/images/two")
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Error("upsert created a second banner row for the same page")
	}
	if second.Image != "/api/images/two" {
		t.Errorf("Image = %q, want /api/images/two", second.Image)
	}
}

func TestPageAssetStoreUpsertBySlotAddress(t *testing.T) {
	db := testDB(t)
	s := NewPageAssetStore(db)

	t.Cleanup(func() { cleanPageAssets(t, db, "store-test-about") })

	first, err := s.Upsert(&models.PageAsset{
		Page: "store-test-about", Section: "team", Key: "member-1",
		ImageURL: "/api/images/a", Text: "Founder", TextAr: "المؤسس",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	second, err := s.Upsert(&models.PageAsset{
		Page: "store-test-about", Section: "team", Key: "member-1",
		ImageURL: "/api/images/b",
	})
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Error("upsert created a second row for the same slot address")
	}
	if second.ImageURL != "/api/images/b" {
		t.Errorf("ImageURL = %q, want /api/images/b", second.ImageURL)
	}

	filtered, err := s.List("store-test-about", "team")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(filtered) != 1 {
		t.Errorf("List returned %d assets, want 1", len(filtered))
	}
}

func TestPageAssetStoreUpdateByID(t *testing.T) {
	db := testDB(t)
	s := NewPageAssetStore(db)

	t.Cleanup(func() { cleanPageAssets(t, db, "store-test-home") })

	created, err := s.Upsert(&models.PageAsset{
		Page: "store-test-home", Section: "hero", Key: "headline",
		Text: "Green spaces", TextAr: "مساحات خضراء",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	created.Text = "Greener spaces"
	created.SortOrder = 3
	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated == nil {
		t.Fatal("Update returned nil for an existing slot")
	}
	if updated.ID != created.ID {
		t.Error("Update changed the slot ID")
	}
	if updated.Text != "Greener spaces" || updated.SortOrder != 3 {
		t.Errorf("updated slot = %q/%d, want Greener spaces/3", updated.Text, updated.SortOrder)
	}

	missing, err := s.Update(&models.PageAsset{
		ID: uuid.New(), Page: "store-test-home", Section: "hero", Key: "ghost",
	})
	if err != nil {
		t.Fatalf("Update for unknown ID errored: %v", err)
	}
	if missing != nil {
		t.Errorf("Update for unknown ID = %+v, want nil", missing)
	}
}
