// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftrightonce/dirtybase-docs/internal/config"
	"github.com/shiftrightonce/dirtybase-docs/internal/logging"
	"github.com/shiftrightonce/dirtybase-docs/internal/model"
	"github.com/shiftrightonce/dirtybase-docs/internal/render"
	"github.com/shiftrightonce/dirtybase-docs/internal/site"
	"github.com/shiftrightonce/dirtybase-docs/internal/version"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	rec := logging.NewRecordingHandler(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(slog.New(rec))
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil))) })

	var out bytes.Buffer
	return &app{
		cfg: &config.Config{
			Env:        "development",
			LogLevel:   "info",
			OutDir:     filepath.Join(dir, ".vitepress"),
			Format:     "json",
			SiteURL:    "https://dirtybase.dev",
			DocsDir:    filepath.Join(dir, "docs"),
			ServerHost: "localhost",
			ServerPort: 5174,
		},
		recorder: rec,
		version:  version.Info{Version: "v0.1.0", GitCommit: "abc1234", BuildTime: "2026-01-01T00:00:00Z"},
		stdout:   &out,
	}, &out
}

func TestDispatch_Version(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.dispatch([]string{"version"}))
	assert.Equal(t, "dirtydocs v0.1.0 (commit: abc1234, built: 2026-01-01T00:00:00Z)\n", out.String())
}

func TestDispatch_UnknownCommand(t *testing.T) {
	a, _ := newTestApp(t)
	err := a.dispatch([]string{"deploy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestBuild_WritesConfig(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, a.dispatch([]string{"build", "-format", "yaml"}))

	path := filepath.Join(a.cfg.OutDir, "config.yaml")
	assert.Equal(t, path+"\n", out.String())

	got, err := render.ReadFile(path)
	require.NoError(t, err)
	want, err := site.Build()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuild_WithSitemap(t *testing.T) {
	a, out := newTestApp(t)
	public := filepath.Join(t.TempDir(), "public")

	require.NoError(t, a.dispatch([]string{"build", "-sitemap", "-public", public, "-format", "mts",
		"-disallow", "/docs/v0", "-disallow", "/drafts"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.FileExists(t, filepath.Join(a.cfg.OutDir, "config.mts"))
	assert.FileExists(t, filepath.Join(public, "sitemap.xml"))
	robots, err := os.ReadFile(filepath.Join(public, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Disallow: /docs/v0\nDisallow: /drafts\nAllow: /\n")
}

func TestBuild_DisallowRejectsURL(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Error(t, a.dispatch([]string{"build", "-disallow", "https://dirtybase.dev/drafts"}))
}

func TestBuild_BadFormat(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Error(t, a.dispatch([]string{"build", "-format", "xml"}))
}

func TestCheck_DefaultConfigWithoutDocs(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, a.dispatch([]string{"check", "-docs", ""}))
	assert.Contains(t, out.String(), "config ok: 2 nav entries")
}

func TestCheck_InvalidConfigFile(t *testing.T) {
	a, out := newTestApp(t)

	bad := model.SiteConfig{
		Title:       "Dirtybase",
		Description: "docs",
		ThemeConfig: model.ThemeConfig{
			Nav: []model.NavEntry{{Text: "Home", Link: ""}},
		},
	}
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, render.WriteFile(path, bad, render.FormatJSON))

	err := a.dispatch([]string{"check", "-config", path, "-docs", ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, site.ErrValidation))
	assert.Contains(t, out.String(), "invalid: themeConfig.nav[0].link")
}

func TestCheck_BrokenLinks(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, os.MkdirAll(a.cfg.DocsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(a.cfg.DocsDir, "index.md"), []byte("# Dirtybase\n"), 0644))

	require.NoError(t, a.dispatch([]string{"check"}), "broken links only fail in strict mode")
	assert.Contains(t, out.String(), "broken: themeConfig.nav[1] /docs/v1/installation")
	assert.Contains(t, out.String(), "warnings [links]: ")

	err := a.dispatch([]string{"check", "-strict"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken links")
}

func TestCheck_MissingDocsDir(t *testing.T) {
	a, _ := newTestApp(t)
	err := a.dispatch([]string{"check", "-docs", filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content root")
}

func TestCheck_StrictFailsOnWarningsAtErrorLevel(t *testing.T) {
	a, out := newTestApp(t)
	a.recorder = logging.Setup(io.Discard, "error")
	require.NoError(t, os.MkdirAll(a.cfg.DocsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(a.cfg.DocsDir, "index.md"), []byte("# Dirtybase\n"), 0644))

	err := a.dispatch([]string{"check", "-strict"})
	require.Error(t, err)
	assert.Positive(t, a.recorder.Count(slog.LevelWarn))
	assert.Contains(t, out.String(), "warnings [links]: ")
}
