package seo

import (
	"strings"
	"testing"

	"almohtaref/internal/models"
)

func link(keyword, url string) models.InternalLink {
	return models.InternalLink{Keyword: keyword, URL: url, Enabled: true}
}

func TestApplyInternalLinks(t *testing.T) {
	html := `<p>We offer garden design and lawn care in Riyadh.</p>`
	out, applied := ApplyInternalLinks(html, []models.InternalLink{
		link("garden design", "/services/garden-design"),
		link("lawn care", "/services/lawn-care"),
	})

	want := `<p>We offer <a href="/services/garden-design">garden design</a> and <a href="/services/lawn-care">lawn care</a> in Riyadh.</p>`
	if out != want {
		t.Errorf("ApplyInternalLinks =\n%s\nwant\n%s", out, want)
	}
	if len(applied) != 2 {
		t.Errorf("applied = %v, want both keywords", applied)
	}
}

func TestApplyInternalLinks_FirstOccurrenceOnly(t *testing.T) {
	html := `<p>lawn care and more lawn care</p>`
	out, _ := ApplyInternalLinks(html, []models.InternalLink{link("lawn care", "/lawn")})

	if strings.Count(out, "<a ") != 1 {
		t.Errorf("expected a single anchor, got: %s", out)
	}
	if !strings.Contains(out, `<a href="/lawn">lawn care</a> and more lawn care`) {
		t.Errorf("first occurrence not linked: %s", out)
	}
}

func TestApplyInternalLinks_SkipsExistingAnchors(t *testing.T) {
	html := `<p><a href="/x">lawn care</a> is what we do</p>`
	out, applied := ApplyInternalLinks(html, []models.InternalLink{link("lawn care", "/lawn")})

	if out != html {
		t.Errorf("text inside an anchor was rewritten: %s", out)
	}
	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
}

func TestApplyInternalLinks_SkipsTagAttributes(t *testing.T) {
	html := `<img alt="lawn care"><p>other text</p>`
	out, applied := ApplyInternalLinks(html, []models.InternalLink{link("lawn care", "/lawn")})

	if out != html {
		t.Errorf("attribute text was rewritten: %s", out)
	}
	if len(applied) != 0 {
		t.Errorf("applied = %v, want none", applied)
	}
}

func TestApplyInternalLinks_DisabledAndArabic(t *testing.T) {
	html := `<p>نقدم خدمة تنسيق الحدائق في الرياض</p>`
	out, applied := ApplyInternalLinks(html, []models.InternalLink{
		{Keyword: "الرياض", URL: "/contact", Enabled: false},
		link("تنسيق الحدائق", "/services"),
	})

	if !strings.Contains(out, `<a href="/services">تنسيق الحدائق</a>`) {
		t.Errorf("Arabic keyword not linked: %s", out)
	}
	if strings.Contains(out, `href="/contact"`) {
		t.Errorf("disabled link was applied: %s", out)
	}
	if len(applied) != 1 || applied[0] != "تنسيق الحدائق" {
		t.Errorf("applied = %v", applied)
	}
}

func TestAutoDescription(t *testing.T) {
	if got := AutoDescription("Short excerpt.", "<p>ignored</p>"); got != "Short excerpt." {
		t.Errorf("excerpt not preferred: %q", got)
	}

	got := AutoDescription("", "<p>Plain   text from <b>the</b> body.</p>")
	if got != "Plain text from the body." {
		t.Errorf("AutoDescription = %q", got)
	}

	long := strings.Repeat("word ", 100)
	got = AutoDescription(long, "")
	if len([]rune(got)) > 160 {
		t.Errorf("description too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated description missing ellipsis: %q", got)
	}
}

func TestAutoKeywords(t *testing.T) {
	got := AutoKeywords("Best Garden Design Tips for Garden Lovers!")
	want := []string{"Best", "Garden", "Design", "Tips", "Lovers"}
	if len(got) != len(want) {
		t.Fatalf("AutoKeywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBlogURL(t *testing.T) {
	got := BlogURL("https://almohtaref-sa.com/", "/حديقة-منزلية")
	want := "https://almohtaref-sa.com/blog/" + "%D8%AD%D8%AF%D9%8A%D9%82%D8%A9-%D9%85%D9%86%D8%B2%D9%84%D9%8A%D8%A9"
	if got != want {
		t.Errorf("BlogURL = %q, want %q", got, want)
	}
}
