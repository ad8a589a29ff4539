// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"almohtaref/internal/cache"
)

// Login verifies the dashboard password against the configured bcrypt
// hash and hands back the admin key mutating routes require.
func (h *API) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	w.Header().Set("Cache-Control", cache.NoStore)

	hash := h.cfg.AdminPasswordHash
	if hash == "" {
		// No hash configured (fresh dev setup): reject all logins.
		hash = "$2a$10$000000000000000000000000000000000000000000000000000000"
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		slog.Warn("failed login attempt", "remote", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"adminKey": h.cfg.AdminKey,
	})
}
