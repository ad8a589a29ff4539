// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "api:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestResponseCache_SetGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client)
	ctx := context.Background()

	body := []byte(`[{"title":"Garden"}]`)
	rc.Set(ctx, "/api/projects", body, time.Minute)

	got, ok := rc.Get(ctx, "/api/projects")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(body) {
		t.Errorf("Get = %q, want %q", got, body)
	}

	if _, ok := rc.Get(ctx, "/api/services"); ok {
		t.Error("expected cache miss for uncached path")
	}
}

func TestResponseCache_InvalidatePath(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client)
	ctx := context.Background()

	rc.Set(ctx, "/api/images/abc", []byte("x"), time.Minute)
	rc.InvalidatePath(ctx, "/api/images/abc")

	if _, ok := rc.Get(ctx, "/api/images/abc"); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestResponseCache_InvalidatePrefix(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client)
	ctx := context.Background()

	rc.Set(ctx, "/api/testimonials", []byte("a"), time.Minute)
	rc.Set(ctx, "/api/testimonials?approved=true", []byte("b"), time.Minute)
	rc.Set(ctx, "/api/projects", []byte("c"), time.Minute)

	rc.InvalidatePrefix(ctx, "/api/testimonials")

	if _, ok := rc.Get(ctx, "/api/testimonials"); ok {
		t.Error("list response survived prefix invalidation")
	}
	if _, ok := rc.Get(ctx, "/api/testimonials?approved=true"); ok {
		t.Error("filtered response survived prefix invalidation")
	}
	if _, ok := rc.Get(ctx, "/api/projects"); !ok {
		t.Error("unrelated category was invalidated")
	}
}
