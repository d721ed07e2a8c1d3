// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/shiftrightonce/dirtybase-docs/internal/model"
)

// Validate checks the structural rules of a site configuration.
// It returns a *ValidationError listing every issue, or nil.
func Validate(cfg model.SiteConfig) error {
	verr := &ValidationError{}

	if strings.TrimSpace(cfg.Title) == "" {
		verr.add("title", "is required")
	}
	if strings.TrimSpace(cfg.Description) == "" {
		verr.add("description", "is required")
	}

	for i, entry := range cfg.ThemeConfig.Nav {
		path := fmt.Sprintf("themeConfig.nav[%d]", i)
		if strings.TrimSpace(entry.Text) == "" {
			verr.add(path+".text", "is required")
		}
		if err := ValidateLink(entry.Link); err != nil {
			verr.add(path+".link", "%v", err)
		}
	}

	if len(cfg.ThemeConfig.Sidebar) == 0 {
		verr.add("themeConfig.sidebar", "must contain at least one group")
	}
	for i, group := range cfg.ThemeConfig.Sidebar {
		path := fmt.Sprintf("themeConfig.sidebar[%d]", i)
		if !group.IsGroup() {
			verr.add(path, "top-level sidebar entries must be groups")
			continue
		}
		validateSidebarItem(verr, path, group)
	}

	for i, social := range cfg.ThemeConfig.SocialLinks {
		path := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		if !model.IsValidIcon(social.Icon) {
			verr.add(path+".icon", "unsupported icon %q", social.Icon)
		}
		if err := ValidateExternalLink(social.Link); err != nil {
			verr.add(path+".link", "%v", err)
		}
	}

	return verr.orNil()
}

func validateSidebarItem(verr *ValidationError, path string, item model.SidebarItem) {
	if !item.IsGroup() {
		if strings.TrimSpace(item.Text) == "" {
			verr.add(path+".text", "is required")
		}
		if err := ValidateLink(item.Link); err != nil {
			verr.add(path+".link", "%v", err)
		}
		if item.Collapsed != nil {
			verr.add(path+".collapsed", "only groups can be collapsed")
		}
		return
	}

	if len(item.Items) == 0 {
		verr.add(path+".items", "group must contain at least one item")
	}
	if item.Collapsed != nil && strings.TrimSpace(item.Text) == "" {
		verr.add(path+".collapsed", "only labelled groups can be collapsed")
	}
	if item.Link != "" {
		if err := ValidateLink(item.Link); err != nil {
			verr.add(path+".link", "%v", err)
		}
	}
	for i, child := range item.Items {
		validateSidebarItem(verr, fmt.Sprintf("%s.items[%d]", path, i), child)
	}
}

// ValidateLink accepts a site-relative path ("/docs/v1/installation") or an
// absolute http(s) URL.
func ValidateLink(link string) error {
	if link == "" {
		return fmt.Errorf("link is required")
	}
	if strings.IndexFunc(link, unicode.IsSpace) >= 0 {
		return fmt.Errorf("link %q contains whitespace", link)
	}
	if IsInternal(link) {
		return validatePath(link)
	}
	return ValidateExternalLink(link)
}

// ValidateExternalLink accepts only absolute http(s) URLs with a host.
func ValidateExternalLink(link string) error {
	if link == "" {
		return fmt.Errorf("link is required")
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", link, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("link %q must be a path starting with / or an http(s) URL", link)
	}
	if parsed.Hostname() == "" {
		return fmt.Errorf("URL %q must have a hostname", link)
	}
	return nil
}

// IsInternal reports whether the link points inside the site.
func IsInternal(link string) bool {
	return strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//")
}

func validatePath(link string) error {
	parsed, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", link, err)
	}
	if parsed.Scheme != "" || parsed.Host != "" {
		return fmt.Errorf("path %q must not carry a scheme or host", link)
	}
	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment == ".." || segment == "." {
			return fmt.Errorf("path %q must not contain relative segments", link)
		}
	}
	return nil
}
