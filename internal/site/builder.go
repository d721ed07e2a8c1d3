// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"github.com/shiftrightonce/dirtybase-docs/internal/model"
)

// Builder assembles a site configuration step by step.
// The zero value is not usable; create one with New.
type Builder struct {
	cfg model.SiteConfig
}

// New creates a Builder for a site with the given metadata.
func New(title, description string) *Builder {
	return &Builder{cfg: model.SiteConfig{
		Title:       title,
		Description: description,
		ThemeConfig: model.ThemeConfig{
			Nav:         []model.NavEntry{},
			Sidebar:     []model.SidebarItem{},
			SocialLinks: []model.SocialLink{},
		},
	}}
}

// Nav appends a top navigation entry.
func (b *Builder) Nav(text, link string) *Builder {
	b.cfg.ThemeConfig.Nav = append(b.cfg.ThemeConfig.Nav, model.NavEntry{Text: text, Link: link})
	return b
}

// Sidebar appends top-level sidebar groups.
func (b *Builder) Sidebar(groups ...model.SidebarItem) *Builder {
	for _, g := range groups {
		b.cfg.ThemeConfig.Sidebar = append(b.cfg.ThemeConfig.Sidebar, g.Clone())
	}
	return b
}

// Social appends a social profile link.
func (b *Builder) Social(icon, link string) *Builder {
	b.cfg.ThemeConfig.SocialLinks = append(b.cfg.ThemeConfig.SocialLinks, model.SocialLink{Icon: icon, Link: link})
	return b
}

// Config returns a copy of the configuration assembled so far.
func (b *Builder) Config() model.SiteConfig {
	return b.cfg.Clone()
}

// Build validates and returns a copy of the configuration.
func (b *Builder) Build() (model.SiteConfig, error) {
	cfg := b.cfg.Clone()
	if err := Validate(cfg); err != nil {
		return model.SiteConfig{}, err
	}
	return cfg, nil
}

// Link creates a sidebar leaf.
func Link(text, link string) model.SidebarItem {
	return model.SidebarItem{Text: text, Link: link}
}

// Group creates a sidebar group that is always expanded.
// An empty text produces an unlabelled group.
func Group(text string, items ...model.SidebarItem) model.SidebarItem {
	return model.SidebarItem{Text: text, Items: items}
}

// CollapsibleGroup creates a labelled group the reader can fold.
func CollapsibleGroup(text string, collapsed bool, items ...model.SidebarItem) model.SidebarItem {
	return model.SidebarItem{Text: text, Items: items, Collapsed: &collapsed}
}
