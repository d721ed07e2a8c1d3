// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package site assembles and validates the Dirtybase documentation site
// configuration consumed by the static-site generator.
package site

import (
	"github.com/shiftrightonce/dirtybase-docs/internal/model"
)

// Default site metadata.
const (
	DefaultTitle       = "Dirtybase"
	DefaultDescription = "Dirtybase framework and documentation site"
	RepositoryURL      = "https://github.com/shiftrightonce/dirtybase"
)

// Build returns the validated Dirtybase site configuration.
func Build() (model.SiteConfig, error) {
	return defaultBuilder().Build()
}

// Default returns the Dirtybase site configuration without validating it.
func Default() model.SiteConfig {
	return defaultBuilder().Config()
}

func defaultBuilder() *Builder {
	return New(DefaultTitle, DefaultDescription).
		Nav("Home", "/").
		Nav("Docs", "/docs/v1/installation").
		Sidebar(Group("",
			CollapsibleGroup("Introduction", false,
				Link("Installation", "/docs/v1/installation"),
				Link("Configuration", "/docs/v1/configuration"),
				Link("Directory Structure", "/docs/v1/structure"),
			),
			CollapsibleGroup("The Basics", false,
				Link("Routing", "/docs/v1/basics/routing"),
				Link("Middleware", "/docs/v1/basics/middleware"),
				Link("Commands", "/docs/v1/basics/commands"),
			),
			CollapsibleGroup("ORM", false,
				Link("Getting Started", "/docs/v1/orm/index"),
				Link("Connections", "/docs/v1/orm/connections"),
				Link("Query Builder", "/docs/v1/orm/query-builder"),
				Link("Migrations", "/docs/v1/orm/migrations"),
				Link("Entities", "/docs/v1/orm/entities"),
			),
			CollapsibleGroup("Packages", true,
				Link("Auth", "/docs/v1/packages/auth"),
				Link("Cache", "/docs/v1/packages/cache"),
				Link("Cron", "/docs/v1/packages/cron"),
				Link("Lock", "/docs/v1/packages/lock"),
				Link("Mail", "/docs/v1/packages/mail"),
				Link("Multitenant", "/docs/v1/packages/multitenant"),
				Link("Permission", "/docs/v1/packages/permission"),
				Link("Session", "/docs/v1/packages/session"),
			),
		)).
		Social(model.IconGitHub, RepositoryURL)
}
