// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Social icon identifiers supported by the site theme.
const (
	IconDiscord   = "discord"
	IconFacebook  = "facebook"
	IconGitHub    = "github"
	IconInstagram = "instagram"
	IconLinkedIn  = "linkedin"
	IconMastodon  = "mastodon"
	IconNpm       = "npm"
	IconSlack     = "slack"
	IconTwitter   = "twitter"
	IconX         = "x"
	IconYouTube   = "youtube"
)

// ValidIcons contains all social icon values the theme can render.
var ValidIcons = []string{
	IconDiscord, IconFacebook, IconGitHub, IconInstagram, IconLinkedIn,
	IconMastodon, IconNpm, IconSlack, IconTwitter, IconX, IconYouTube,
}

// SiteConfig is the complete configuration handed to the site generator.
type SiteConfig struct {
	Title       string      `json:"title" yaml:"title" toml:"title"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig" toml:"themeConfig"`
}

// ThemeConfig holds the navigation chrome of the site.
type ThemeConfig struct {
	Nav         []NavEntry    `json:"nav" yaml:"nav" toml:"nav"`
	Sidebar     []SidebarItem `json:"sidebar" yaml:"sidebar" toml:"sidebar"`
	SocialLinks []SocialLink  `json:"socialLinks" yaml:"socialLinks" toml:"socialLinks"`
}

// NavEntry is a single link in the top navigation bar.
type NavEntry struct {
	Text string `json:"text" yaml:"text" toml:"text"`
	Link string `json:"link" yaml:"link" toml:"link"`
}

// SidebarItem is either a leaf link or a group of nested items.
// A group may carry a label; Collapsed is only honoured on labelled groups.
type SidebarItem struct {
	Text      string        `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Link      string        `json:"link,omitempty" yaml:"link,omitempty" toml:"link,omitempty"`
	Items     []SidebarItem `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Collapsed *bool         `json:"collapsed,omitempty" yaml:"collapsed,omitempty" toml:"collapsed,omitempty"`
}

// SocialLink is an external profile shown in the site header.
type SocialLink struct {
	Icon string `json:"icon" yaml:"icon" toml:"icon"`
	Link string `json:"link" yaml:"link" toml:"link"`
}

// IsGroup reports whether the item is a group rather than a plain link.
// An item without a link is always treated as a group.
func (i SidebarItem) IsGroup() bool {
	return len(i.Items) > 0 || i.Link == ""
}

// IsCollapsed returns the collapsed flag, defaulting to false when unset.
func (i SidebarItem) IsCollapsed() bool {
	return i.Collapsed != nil && *i.Collapsed
}

// Clone returns a deep copy of the item and its children.
func (i SidebarItem) Clone() SidebarItem {
	out := SidebarItem{Text: i.Text, Link: i.Link}
	if i.Collapsed != nil {
		c := *i.Collapsed
		out.Collapsed = &c
	}
	if i.Items != nil {
		out.Items = make([]SidebarItem, len(i.Items))
		for idx, child := range i.Items {
			out.Items[idx] = child.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the configuration.
func (c SiteConfig) Clone() SiteConfig {
	out := SiteConfig{Title: c.Title, Description: c.Description}
	if c.ThemeConfig.Nav != nil {
		out.ThemeConfig.Nav = append([]NavEntry(nil), c.ThemeConfig.Nav...)
	}
	if c.ThemeConfig.Sidebar != nil {
		out.ThemeConfig.Sidebar = make([]SidebarItem, len(c.ThemeConfig.Sidebar))
		for idx, item := range c.ThemeConfig.Sidebar {
			out.ThemeConfig.Sidebar[idx] = item.Clone()
		}
	}
	if c.ThemeConfig.SocialLinks != nil {
		out.ThemeConfig.SocialLinks = append([]SocialLink(nil), c.ThemeConfig.SocialLinks...)
	}
	return out
}

// IsValidIcon checks if an icon identifier is supported.
func IsValidIcon(icon string) bool {
	for _, v := range ValidIcons {
		if v == icon {
			return true
		}
	}
	return false
}
