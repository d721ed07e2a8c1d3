// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_Order(t *testing.T) {
	cfg := New("Site", "Desc").
		Nav("Home", "/").
		Nav("Guide", "/guide").
		Sidebar(Group("",
			CollapsibleGroup("A", false, Link("One", "/a/one"), Link("Two", "/a/two")),
			Group("B", Link("Three", "/b/three")),
		)).
		Social("github", "https://github.com/example").
		Config()

	refs := Links(cfg)
	require.Len(t, refs, 6)

	got := make([]string, len(refs))
	for i, r := range refs {
		got[i] = r.Link
	}
	assert.Equal(t, []string{"/", "/guide", "/a/one", "/a/two", "/b/three", "https://github.com/example"}, got)

	assert.Equal(t, SourceNav, refs[0].Source)
	assert.Equal(t, SourceSidebar, refs[2].Source)
	assert.Equal(t, "themeConfig.sidebar[0].items[0].items[1]", refs[3].Path)
	assert.Equal(t, SourceSocial, refs[5].Source)
	assert.False(t, refs[5].Internal())
}

func TestInternalLinks_Deduplicates(t *testing.T) {
	cfg, err := Build()
	require.NoError(t, err)

	refs := InternalLinks(cfg)
	seen := make(map[string]bool)
	for _, r := range refs {
		assert.True(t, r.Internal(), "external link %q returned", r.Link)
		assert.False(t, seen[r.Link], "duplicate link %q", r.Link)
		seen[r.Link] = true
	}
	// /docs/v1/installation appears in nav and sidebar; the nav entry wins.
	assert.True(t, seen["/docs/v1/installation"])
	assert.Equal(t, "/", refs[0].Link)
	assert.Equal(t, SourceNav, refs[1].Source)
}

func TestInternalLinks_HTMLSuffixIsSamePage(t *testing.T) {
	cfg := New("Site", "Desc").
		Nav("Guide", "/guide").
		Sidebar(Group("Guide",
			Link("Guide page", "/guide.html"),
			Link("Options", "/guide.html#options"),
			Link("Other", "/other.html"),
		)).
		Config()

	refs := InternalLinks(cfg)
	got := make([]string, len(refs))
	for i, r := range refs {
		got[i] = r.Link
	}
	assert.Equal(t, []string{"/guide", "/guide.html#options", "/other.html"}, got)
}

func TestCanonicalLink(t *testing.T) {
	tests := map[string]string{
		"/":                    "/",
		"/guide":               "/guide",
		"/guide.html":          "/guide",
		"/guide.html#setup":    "/guide#setup",
		"/guide.html?x=1#y":    "/guide?x=1#y",
		"/docs/v1/orm/index":   "/docs/v1/orm/index",
		"/notes#see-file.html": "/notes#see-file.html",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalLink(in), in)
	}
}

func TestFindGroup_Missing(t *testing.T) {
	cfg := Default()
	_, ok := FindGroup(cfg, "Nope")
	assert.False(t, ok)
}
