package cache

import (
	"context"
	"testing"
)

// fakePaths records invalidation calls for assertions.
type fakePaths struct {
	paths    []string
	prefixes []string
}

func (f *fakePaths) InvalidatePath(_ context.Context, path string) {
	f.paths = append(f.paths, path)
}

func (f *fakePaths) InvalidatePrefix(_ context.Context, prefix string) {
	f.prefixes = append(f.prefixes, prefix)
}

func TestNormalizeImagePath(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "absolute url keeps path component",
			ref:  "https://cdn.example.com/api/images/abc123",
			want: "/api/images/abc123",
		},
		{
			name: "absolute url with query",
			ref:  "https://cdn.example.com/api/images/abc123?w=640",
			want: "/api/images/abc123",
		},
		{
			name: "path-shaped ref used as-is",
			ref:  "/api/images/abc123",
			want: "/api/images/abc123",
		},
		{
			name: "other absolute path used as-is",
			ref:  "/uploads/garden.jpg",
			want: "/uploads/garden.jpg",
		},
		{
			name: "bare id gets serving prefix",
			ref:  "abc123",
			want: "/api/images/abc123",
		},
		{
			name: "empty ref",
			ref:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeImagePath(tt.ref); got != tt.want {
				t.Errorf("NormalizeImagePath(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestInvalidator_Category(t *testing.T) {
	paths := &fakePaths{}
	inv := NewInvalidator(paths, nil)

	inv.Category(context.Background(), CategoryTestimonials)

	if len(paths.prefixes) != 1 || paths.prefixes[0] != "/api/testimonials" {
		t.Errorf("prefixes = %v, want [/api/testimonials]", paths.prefixes)
	}
}

func TestInvalidator_Image(t *testing.T) {
	paths := &fakePaths{}
	inv := NewInvalidator(paths, nil)

	inv.Image(context.Background(), "abc123")
	inv.Image(context.Background(), "https://cdn.example.com/api/images/def456")
	inv.Image(context.Background(), "") // no-op

	want := []string{"/api/images/abc123", "/api/images/def456"}
	if len(paths.paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths.paths, want)
	}
	for i := range want {
		if paths.paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths.paths[i], want[i])
		}
	}
}

// TestInvalidator_NilCollaborators verifies the dispatcher tolerates
// running without a cache or audit log wired (development mode).
func TestInvalidator_NilCollaborators(t *testing.T) {
	inv := NewInvalidator(nil, nil)
	inv.Category(context.Background(), CategoryProjects)
	inv.Image(context.Background(), "abc123")
}
