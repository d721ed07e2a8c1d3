// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package linkcheck resolves the internal links of a site configuration
// against the markdown content directory.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shiftrightonce/dirtybase-docs/internal/model"
	"github.com/shiftrightonce/dirtybase-docs/internal/site"
	"github.com/shiftrightonce/dirtybase-docs/internal/util"
)

// DefaultExtension is the source extension of documentation pages.
const DefaultExtension = ".md"

// Result is the outcome of checking a single link.
type Result struct {
	Ref     site.LinkRef `json:"ref"`
	File    string       `json:"file,omitempty"`
	Title   string       `json:"title,omitempty"`
	ModTime time.Time    `json:"modTime,omitempty"`
	Problem string       `json:"problem,omitempty"`
}

// OK reports whether the link resolved.
func (r Result) OK() bool {
	return r.Problem == ""
}

// Report summarises a link check run.
type Report struct {
	ID        string    `json:"id"`
	Checked   int       `json:"checked"`
	Skipped   int       `json:"skipped"`
	Pages     []Result  `json:"pages"`
	Broken    []Result  `json:"broken"`
	CheckedAt time.Time `json:"checkedAt"`
}

// OK reports whether every internal link resolved.
func (r Report) OK() bool {
	return len(r.Broken) == 0
}

// Checker resolves internal links against files under Root.
type Checker struct {
	Root       string
	Extensions []string // tried in order; defaults to .md
	Anchors    bool     // also verify #fragment against page headings
}

// New creates a Checker for the given content root.
func New(root string) *Checker {
	return &Checker{Root: root, Extensions: []string{DefaultExtension}, Anchors: true}
}

// Check resolves every internal link of cfg. External links are counted as
// skipped. Each distinct link is resolved once; every reference to a broken
// link is reported.
func (c *Checker) Check(ctx context.Context, cfg model.SiteConfig) (Report, error) {
	info, err := os.Stat(c.Root)
	if err != nil {
		return Report{}, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("content root %s is not a directory", c.Root)
	}

	report := Report{ID: uuid.NewString(), CheckedAt: time.Now()}
	resolved := make(map[string]Result)
	pages := make(map[string]Page)

	for _, ref := range site.Links(cfg) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !ref.Internal() {
			report.Skipped++
			continue
		}

		key := site.CanonicalLink(ref.Link)
		res, seen := resolved[key]
		if !seen {
			report.Checked++
			res = c.resolve(ref.Link, pages)
			resolved[key] = res
			if res.OK() {
				res.Ref = ref
				report.Pages = append(report.Pages, res)
			}
		}
		if !res.OK() {
			res.Ref = ref
			report.Broken = append(report.Broken, res)
			slog.Warn("broken link", "path", ref.Path, "link", ref.Link, "problem", res.Problem)
		}
	}

	slog.Debug("link check finished",
		"checked", report.Checked,
		"skipped", report.Skipped,
		"broken", len(report.Broken))
	return report, nil
}

func (c *Checker) resolve(link string, pages map[string]Page) Result {
	linkPath, fragment := util.SplitLink(link)

	file, mod, err := c.locate(linkPath)
	if err != nil {
		return Result{Problem: err.Error()}
	}

	page, ok := pages[file]
	if !ok {
		source, err := os.ReadFile(file)
		if err != nil {
			return Result{File: file, Problem: fmt.Sprintf("reading page: %v", err)}
		}
		page, err = ParsePage(source)
		if err != nil {
			return Result{File: file, Problem: err.Error()}
		}
		pages[file] = page
	}

	res := Result{File: file, Title: page.Title, ModTime: mod}
	if c.Anchors && fragment != "" && !page.Anchors[fragment] {
		res.Problem = fmt.Sprintf("no heading with anchor #%s", fragment)
	}
	return res
}

// locate maps a site path to a content file: /a/b tries a/b.md then
// a/b/index.md; / maps to index.md.
func (c *Checker) locate(linkPath string) (string, time.Time, error) {
	rel := strings.Trim(path.Clean("/"+linkPath), "/")
	// VitePress accepts both /page and /page.html
	rel = strings.TrimSuffix(rel, ".html")

	exts := c.Extensions
	if len(exts) == 0 {
		exts = []string{DefaultExtension}
	}

	var candidates []string
	for _, ext := range exts {
		if rel != "" {
			candidates = append(candidates, rel+ext)
		}
		candidates = append(candidates, path.Join(rel, "index"+ext))
	}

	for _, candidate := range candidates {
		file, err := util.SafeJoinPath(c.Root, candidate)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("link escapes content root")
		}
		info, err := os.Stat(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", time.Time{}, fmt.Errorf("stat %s: %w", file, err)
		}
		if info.IsDir() {
			continue
		}
		return file, info.ModTime(), nil
	}
	return "", time.Time{}, fmt.Errorf("no page found (tried %s)", strings.Join(candidates, ", "))
}
