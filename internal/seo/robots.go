// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
)

// RobotsConfig holds configuration for robots.txt generation.
type RobotsConfig struct {
	SiteURL       string   // Base URL for the sitemap reference
	DisallowAll   bool     // Block all crawlers (for staging builds)
	DisallowPaths []string // Paths to keep out of crawlers, e.g. /docs/v0
}

// RobotsBuilder builds robots.txt content.
type RobotsBuilder struct {
	config RobotsConfig
}

// NewRobotsBuilder creates a new robots.txt builder.
func NewRobotsBuilder(config RobotsConfig) *RobotsBuilder {
	return &RobotsBuilder{config: config}
}

// Build generates the robots.txt content. Disallowed paths are written once
// each, in the order given, before the catch-all Allow.
func (b *RobotsBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")

	if b.config.DisallowAll {
		sb.WriteString("Disallow: /\n")
		return sb.String()
	}

	seen := make(map[string]bool, len(b.config.DisallowPaths))
	for _, path := range b.config.DisallowPaths {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		sb.WriteString("Disallow: " + path + "\n")
	}
	sb.WriteString("Allow: /\n")

	if b.config.SiteURL != "" {
		sb.WriteString("\nSitemap: " + strings.TrimSuffix(b.config.SiteURL, "/") + "/sitemap.xml\n")
	}
	return sb.String()
}
