// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/shiftrightonce/dirtybase-docs/internal/service"
)

// Check statuses.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDisabled = "disabled"
	StatusPending  = "pending"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	svc       *service.SiteService
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(svc *service.SiteService, version string) *HealthHandler {
	return &HealthHandler{
		svc:       svc,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SystemInfo contains process-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	MemAlloc     string `json:"mem_alloc"`
}

// Health handles GET /health requests.
// Broken links degrade the status but the preview keeps serving, so the
// response code stays 200. Pass ?system=1 for process details.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	links := h.checkLinks()

	status := HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks: map[string]Check{
			"config": h.checkConfig(),
			"links":  links,
		},
	}
	if links.Status == StatusDegraded {
		status.Status = StatusDegraded
	}
	if r.URL.Query().Get("system") == "1" {
		status.System = getSystemInfo()
	}

	writeJSON(w, http.StatusOK, status)
}

func (h *HealthHandler) checkConfig() Check {
	cfg := h.svc.Config()
	return Check{
		Status:  StatusHealthy,
		Message: fmt.Sprintf("%s: %d nav entries, %d sidebar groups", cfg.Title, len(cfg.ThemeConfig.Nav), len(cfg.ThemeConfig.Sidebar)),
	}
}

func (h *HealthHandler) checkLinks() Check {
	if !h.svc.LinkChecking() {
		return Check{Status: StatusDisabled}
	}
	report, ok := h.svc.LinkReport()
	if !ok {
		return Check{Status: StatusPending, Message: "no link report yet"}
	}
	if !report.OK() {
		return Check{
			Status:  StatusDegraded,
			Message: fmt.Sprintf("%d broken of %d checked", len(report.Broken), report.Checked),
		}
	}
	return Check{Status: StatusHealthy, Message: fmt.Sprintf("%d links resolved", report.Checked)}
}

// getSystemInfo returns process-level metrics.
func getSystemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		MemAlloc:     formatBytes(m.Alloc),
	}
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
