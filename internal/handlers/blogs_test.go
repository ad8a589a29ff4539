package handlers

import (
	"strings"
	"testing"

	"almohtaref/internal/models"
)

func TestRenderBlogFillsSEOFields(t *testing.T) {
	h := testAPI(t, nil)

	b := &models.Blog{
		Title:   "Garden Care Tips",
		Content: "# Garden Care\n\nWater your plants in the early morning.",
		AutoSEO: true,
	}
	if err := h.renderBlog(b); err != nil {
		t.Fatalf("renderBlog failed: %v", err)
	}

	if !strings.Contains(b.RenderedHTML, "<h1") {
		t.Errorf("RenderedHTML = %q, want rendered heading", b.RenderedHTML)
	}
	if b.MetaTitle != "Garden Care Tips" {
		t.Errorf("MetaTitle = %q, want the post title", b.MetaTitle)
	}
	if b.MetaDescription == "" {
		t.Error("MetaDescription should be derived from the content")
	}
	if len(b.MetaKeywords) == 0 {
		t.Error("MetaKeywords should be derived from the title")
	}
}

func TestRenderBlogRespectsExplicitSEOFields(t *testing.T) {
	h := testAPI(t, nil)

	b := &models.Blog{
		Title:           "Garden Care Tips",
		Content:         "Some content.",
		AutoSEO:         true,
		MetaTitle:       "Hand-written title",
		MetaDescription: "Hand-written description",
		MetaKeywords:    models.StringList{"garden"},
	}
	if err := h.renderBlog(b); err != nil {
		t.Fatalf("renderBlog failed: %v", err)
	}

	if b.MetaTitle != "Hand-written title" {
		t.Errorf("MetaTitle = %q, explicit value should survive", b.MetaTitle)
	}
	if b.MetaDescription != "Hand-written description" {
		t.Errorf("MetaDescription = %q, explicit value should survive", b.MetaDescription)
	}
}

func TestRenderBlogWithoutAutoSEO(t *testing.T) {
	h := testAPI(t, nil)

	b := &models.Blog{
		Title:   "Garden Care Tips",
		Content: "Some content.",
	}
	if err := h.renderBlog(b); err != nil {
		t.Fatalf("renderBlog failed: %v", err)
	}

	if b.MetaTitle != "" || b.MetaDescription != "" || len(b.MetaKeywords) != 0 {
		t.Errorf("SEO fields should stay empty without auto SEO: %+v", b)
	}
}

func TestRenderBlogPassesThroughLegacyHTML(t *testing.T) {
	h := testAPI(t, nil)

	// Posts imported from the old site carry raw HTML instead of Markdown.
	b := &models.Blog{
		Title:   "Imported Post",
		Content: `<p dir="rtl">محتوى قديم</p>`,
	}
	if err := h.renderBlog(b); err != nil {
		t.Fatalf("renderBlog failed: %v", err)
	}
	if !strings.Contains(b.RenderedHTML, `<p dir="rtl">`) {
		t.Errorf("RenderedHTML = %q, raw HTML should pass through", b.RenderedHTML)
	}
}
