// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"fmt"
	"strings"

	"github.com/shiftrightonce/dirtybase-docs/internal/model"
)

// Link sources.
const (
	SourceNav     = "nav"
	SourceSidebar = "sidebar"
	SourceSocial  = "social"
)

// LinkRef is a navigable link found in a configuration.
type LinkRef struct {
	Path   string // location in the config, e.g. themeConfig.sidebar[0].items[2].items[0]
	Source string // nav, sidebar or social
	Text   string
	Link   string
}

// Internal reports whether the link points inside the site.
func (r LinkRef) Internal() bool {
	return IsInternal(r.Link)
}

// Links flattens every link of the configuration in display order:
// nav first, then the sidebar depth-first, then social links.
func Links(cfg model.SiteConfig) []LinkRef {
	var refs []LinkRef
	for i, entry := range cfg.ThemeConfig.Nav {
		refs = append(refs, LinkRef{
			Path:   fmt.Sprintf("themeConfig.nav[%d]", i),
			Source: SourceNav,
			Text:   entry.Text,
			Link:   entry.Link,
		})
	}

	var walk func(path string, item model.SidebarItem)
	walk = func(path string, item model.SidebarItem) {
		if item.Link != "" {
			refs = append(refs, LinkRef{Path: path, Source: SourceSidebar, Text: item.Text, Link: item.Link})
		}
		for i, child := range item.Items {
			walk(fmt.Sprintf("%s.items[%d]", path, i), child)
		}
	}
	for i, group := range cfg.ThemeConfig.Sidebar {
		walk(fmt.Sprintf("themeConfig.sidebar[%d]", i), group)
	}

	for i, social := range cfg.ThemeConfig.SocialLinks {
		refs = append(refs, LinkRef{
			Path:   fmt.Sprintf("themeConfig.socialLinks[%d]", i),
			Source: SourceSocial,
			Text:   social.Icon,
			Link:   social.Link,
		})
	}
	return refs
}

// InternalLinks returns the distinct internal links in first-seen order.
// Links that differ only by an .html suffix count as the same page.
func InternalLinks(cfg model.SiteConfig) []LinkRef {
	seen := make(map[string]bool)
	var out []LinkRef
	for _, ref := range Links(cfg) {
		if !ref.Internal() {
			continue
		}
		key := CanonicalLink(ref.Link)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}

// CanonicalLink drops an .html suffix from the path of an internal link,
// keeping any query or fragment. The generator serves /x and /x.html alike.
func CanonicalLink(link string) string {
	end := strings.IndexAny(link, "?#")
	if end < 0 {
		end = len(link)
	}
	return strings.TrimSuffix(link[:end], ".html") + link[end:]
}

// FindGroup returns the first labelled sidebar group with the given text.
func FindGroup(cfg model.SiteConfig, text string) (model.SidebarItem, bool) {
	var find func(items []model.SidebarItem) (model.SidebarItem, bool)
	find = func(items []model.SidebarItem) (model.SidebarItem, bool) {
		for _, item := range items {
			if item.IsGroup() && item.Text == text {
				return item, true
			}
			if found, ok := find(item.Items); ok {
				return found, true
			}
		}
		return model.SidebarItem{}, false
	}
	return find(cfg.ThemeConfig.Sidebar)
}
