package main

import (
	"context"
	"log/slog"
	"testing"

	"almohtaref/internal/config"
)

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	dev := newLogger(&config.Config{Env: "development"})
	if !dev.Enabled(ctx, slog.LevelDebug) {
		t.Error("development logger should emit debug records")
	}

	prod := newLogger(&config.Config{Env: "production"})
	if prod.Enabled(ctx, slog.LevelDebug) {
		t.Error("production logger should not emit debug records")
	}
	if !prod.Enabled(ctx, slog.LevelInfo) {
		t.Error("production logger should emit info records")
	}
}
