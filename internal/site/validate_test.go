// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{name: "root", link: "/", wantErr: false},
		{name: "docs path", link: "/docs/v1/installation", wantErr: false},
		{name: "path with anchor", link: "/docs/v1/orm/index#setup", wantErr: false},
		{name: "https url", link: "https://github.com/shiftrightonce/dirtybase", wantErr: false},
		{name: "http url", link: "http://example.com/a", wantErr: false},
		{name: "empty", link: "", wantErr: true},
		{name: "relative path", link: "docs/v1", wantErr: true},
		{name: "parent segment", link: "/docs/../etc", wantErr: true},
		{name: "dot segment", link: "/docs/./v1", wantErr: true},
		{name: "protocol relative", link: "//evil.example.com/x", wantErr: true},
		{name: "whitespace", link: "/docs/v1/my page", wantErr: true},
		{name: "javascript scheme", link: "javascript:alert(1)", wantErr: true},
		{name: "missing host", link: "https://", wantErr: true},
		{name: "ftp", link: "ftp://example.com/file", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLink(tt.link)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLink(%q) error = %v, wantErr %v", tt.link, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExternalLink_RejectsPaths(t *testing.T) {
	if err := ValidateExternalLink("/docs"); err == nil {
		t.Error("ValidateExternalLink(\"/docs\") = nil, want error")
	}
}

func TestValidateLink_SlugPathsAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9][a-z0-9-]{0,15}`), 1, 6).Draw(t, "segments")
		link := "/" + strings.Join(segments, "/")
		if err := ValidateLink(link); err != nil {
			t.Fatalf("ValidateLink(%q) = %v, want nil", link, err)
		}
	})
}

func TestValidateLink_BareWordsRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-z][a-z0-9-]{0,20}`).Draw(t, "word")
		if err := ValidateLink(word); err == nil {
			t.Fatalf("ValidateLink(%q) = nil, want error", word)
		}
	})
}

func TestValidateLink_WhitespaceRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`/[a-z]{1,8}`).Draw(t, "prefix")
		space := rapid.SampledFrom([]string{" ", "\t", "\n"}).Draw(t, "space")
		suffix := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "suffix")
		link := prefix + space + suffix
		if err := ValidateLink(link); err == nil {
			t.Fatalf("ValidateLink(%q) = nil, want error", link)
		}
	})
}
