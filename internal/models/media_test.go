package models

import "testing"

func TestMediaIsImage(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"image/webp", true},
		{"application/pdf", false},
		{"text/plain", false},
	}
	for _, tt := range tests {
		m := Media{ContentType: tt.contentType}
		if got := m.IsImage(); got != tt.want {
			t.Errorf("IsImage(%s) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}

func TestMediaHumanSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		m := Media{SizeBytes: tt.bytes}
		if got := m.HumanSize(); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
