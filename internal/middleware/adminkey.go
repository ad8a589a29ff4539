// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminKeyHeader carries the shared secret the dashboard sends on every
// mutating request. This is authorization; the X-Admin-Request marker the
// cache package looks at is only a cache-policy hint and grants nothing.
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey rejects requests whose admin key header does not match
// the configured secret. The comparison is constant-time.
func RequireAdminKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
