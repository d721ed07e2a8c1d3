// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service ties the built site configuration to its published artefacts.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/shiftrightonce/dirtybase-docs/internal/linkcheck"
	"github.com/shiftrightonce/dirtybase-docs/internal/model"
	"github.com/shiftrightonce/dirtybase-docs/internal/render"
	"github.com/shiftrightonce/dirtybase-docs/internal/seo"
	"github.com/shiftrightonce/dirtybase-docs/internal/site"
)

// SiteService serves one built configuration and the artefacts derived from it.
// Encoded outputs are cached per format; the link report is replaced on refresh.
type SiteService struct {
	cfg     model.SiteConfig
	siteURL string
	checker *linkcheck.Checker

	mu      sync.RWMutex
	encoded map[render.Format][]byte
	report  *linkcheck.Report
}

// NewSiteService creates a new SiteService.
// If checker is nil, link checking is disabled.
func NewSiteService(cfg model.SiteConfig, siteURL string, checker *linkcheck.Checker) *SiteService {
	return &SiteService{
		cfg:     cfg.Clone(),
		siteURL: siteURL,
		checker: checker,
		encoded: make(map[render.Format][]byte),
	}
}

// Config returns a copy of the served configuration.
func (s *SiteService) Config() model.SiteConfig {
	return s.cfg.Clone()
}

// Encoded returns the configuration in the given format.
func (s *SiteService) Encoded(format render.Format) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.encoded[format]
	s.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := render.Marshal(s.cfg, format)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.encoded[format] = data
	s.mu.Unlock()
	return data, nil
}

// SitemapPages lists the internal pages of the site. Modification times are
// taken from the last link report when one exists.
func (s *SiteService) SitemapPages() []seo.SitemapPage {
	modTimes := make(map[string]linkcheck.Result)
	if report, ok := s.LinkReport(); ok {
		for _, p := range report.Pages {
			modTimes[p.Ref.Link] = p
		}
	}

	refs := site.InternalLinks(s.cfg)
	pages := make([]seo.SitemapPage, 0, len(refs))
	for _, ref := range refs {
		page := seo.SitemapPage{Path: site.CanonicalLink(ref.Link), TopLevel: ref.Source == site.SourceNav}
		if res, ok := modTimes[ref.Link]; ok {
			page.UpdatedAt = res.ModTime
		}
		pages = append(pages, page)
	}
	return pages
}

// Sitemap generates sitemap.xml for the site.
func (s *SiteService) Sitemap() ([]byte, error) {
	return seo.GenerateSitemap(s.siteURL, s.SitemapPages())
}

// RobotsPolicy controls what robots.txt allows.
type RobotsPolicy struct {
	DisallowAll   bool     // block every crawler
	DisallowPaths []string // site paths kept out of crawlers
}

// Robots generates robots.txt for the site.
func (s *SiteService) Robots(policy RobotsPolicy) string {
	return seo.NewRobotsBuilder(seo.RobotsConfig{
		SiteURL:       s.siteURL,
		DisallowAll:   policy.DisallowAll,
		DisallowPaths: policy.DisallowPaths,
	}).Build()
}

// LinkChecking reports whether a content directory is configured.
func (s *SiteService) LinkChecking() bool {
	return s.checker != nil
}

// RefreshLinks re-runs the link check and stores the report.
func (s *SiteService) RefreshLinks(ctx context.Context) (linkcheck.Report, error) {
	if s.checker == nil {
		return linkcheck.Report{}, fmt.Errorf("link checking is disabled")
	}
	report, err := s.checker.Check(ctx, s.cfg)
	if err != nil {
		return linkcheck.Report{}, fmt.Errorf("checking links: %w", err)
	}

	s.mu.Lock()
	s.report = &report
	s.mu.Unlock()

	slog.Info("link report refreshed", "checked", report.Checked, "broken", len(report.Broken))
	return report, nil
}

// LinkReport returns the last link report, if any.
func (s *SiteService) LinkReport() (linkcheck.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return linkcheck.Report{}, false
	}
	return *s.report, true
}

// PublishOptions controls which files Publish writes.
type PublishOptions struct {
	OutDir    string        // receives the configuration file
	Format    render.Format // configuration encoding
	PublicDir string        // receives sitemap.xml and robots.txt; empty skips them
	Robots    RobotsPolicy  // robots.txt rules
}

// Publish writes the configuration and, optionally, the SEO artefacts.
// It returns the written paths in order.
func (s *SiteService) Publish(opts PublishOptions) ([]string, error) {
	data, err := s.Encoded(opts.Format)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(opts.OutDir, opts.Format.FileName())
	if err := render.WriteBytes(configPath, data); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}
	written := []string{configPath}
	slog.Info("config written", "path", configPath, "format", opts.Format)

	if opts.PublicDir == "" {
		return written, nil
	}

	sitemap, err := s.Sitemap()
	if err != nil {
		return written, fmt.Errorf("building sitemap: %w", err)
	}
	sitemapPath := filepath.Join(opts.PublicDir, "sitemap.xml")
	if err := render.WriteBytes(sitemapPath, sitemap); err != nil {
		return written, fmt.Errorf("writing sitemap: %w", err)
	}
	written = append(written, sitemapPath)

	robotsPath := filepath.Join(opts.PublicDir, "robots.txt")
	if err := render.WriteBytes(robotsPath, []byte(s.Robots(opts.Robots))); err != nil {
		return written, fmt.Errorf("writing robots.txt: %w", err)
	}
	written = append(written, robotsPath)
	slog.Info("seo files written", "dir", opts.PublicDir)

	return written, nil
}
