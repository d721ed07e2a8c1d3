// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strconv"
)

// CacheControl sets Cache-Control on every response. A zero maxAge marks
// responses as no-cache so the preview always shows the current build.
func CacheControl(maxAge int) func(http.Handler) http.Handler {
	value := "no-cache"
	if maxAge > 0 {
		value = "public, max-age=" + strconv.Itoa(maxAge)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}
