// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftrightonce/dirtybase-docs/internal/render"
	"github.com/shiftrightonce/dirtybase-docs/internal/service"
)

// SiteHandler serves the built configuration and its derived files.
type SiteHandler struct {
	svc           *service.SiteService
	defaultFormat render.Format
	robots        service.RobotsPolicy
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(svc *service.SiteService, defaultFormat render.Format, robots service.RobotsPolicy) *SiteHandler {
	if defaultFormat == "" {
		defaultFormat = render.FormatJSON
	}
	return &SiteHandler{svc: svc, defaultFormat: defaultFormat, robots: robots}
}

// Config handles GET /config and GET /config.{format}.
func (h *SiteHandler) Config(w http.ResponseWriter, r *http.Request) {
	format := h.defaultFormat
	if name := chi.URLParam(r, "format"); name != "" {
		f, err := render.ParseFormat(name)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		format = f
	}

	data, err := h.svc.Encoded(format)
	if err != nil {
		slog.Error("failed to encode config", "format", format, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to encode config")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(data)
}

// Sitemap handles GET /sitemap.xml.
func (h *SiteHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Sitemap()
	if err != nil {
		slog.Error("failed to build sitemap", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to build sitemap")
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

// Robots handles GET /robots.txt.
func (h *SiteHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.svc.Robots(h.robots)))
}

// LinkCheck handles GET /linkcheck. The last report is returned unless none
// exists yet or ?refresh=1 is passed.
func (h *SiteHandler) LinkCheck(w http.ResponseWriter, r *http.Request) {
	if !h.svc.LinkChecking() {
		writeJSONError(w, http.StatusNotFound, "link checking is disabled")
		return
	}

	report, ok := h.svc.LinkReport()
	if !ok || r.URL.Query().Get("refresh") == "1" {
		var err error
		report, err = h.svc.RefreshLinks(r.Context())
		if err != nil {
			slog.Error("link check failed", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "link check failed")
			return
		}
	}

	writeJSONSuccess(w, map[string]any{
		"ok":     report.OK(),
		"report": report,
	})
}
