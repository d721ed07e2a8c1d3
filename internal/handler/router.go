// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP routes of the preview server.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shiftrightonce/dirtybase-docs/internal/middleware"
	"github.com/shiftrightonce/dirtybase-docs/internal/render"
	"github.com/shiftrightonce/dirtybase-docs/internal/service"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Version       string
	DefaultFormat render.Format
	Robots        service.RobotsPolicy
	RequestLog    bool
}

// NewRouter builds the preview server routes.
func NewRouter(svc *service.SiteService, opts RouterOptions) http.Handler {
	siteHandler := NewSiteHandler(svc, opts.DefaultFormat, opts.Robots)
	healthHandler := NewHealthHandler(svc, opts.Version)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if opts.RequestLog {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.CacheControl(0))

	r.Get("/health", healthHandler.Health)
	r.Get("/config", siteHandler.Config)
	r.Get("/config.{format}", siteHandler.Config)
	r.Get("/sitemap.xml", siteHandler.Sitemap)
	r.Get("/robots.txt", siteHandler.Robots)
	// Each refresh walks the content tree.
	r.With(middleware.RateLimit(1, 5)).Get("/linkcheck", siteHandler.LinkCheck)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
