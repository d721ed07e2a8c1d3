// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/shiftrightonce/dirtybase-docs/internal/config"
	"github.com/shiftrightonce/dirtybase-docs/internal/handler"
	"github.com/shiftrightonce/dirtybase-docs/internal/linkcheck"
	"github.com/shiftrightonce/dirtybase-docs/internal/logging"
	"github.com/shiftrightonce/dirtybase-docs/internal/model"
	"github.com/shiftrightonce/dirtybase-docs/internal/render"
	"github.com/shiftrightonce/dirtybase-docs/internal/service"
	"github.com/shiftrightonce/dirtybase-docs/internal/site"
	"github.com/shiftrightonce/dirtybase-docs/internal/version"
)

type app struct {
	cfg      *config.Config
	recorder *logging.RecordingHandler
	version  version.Info
	stdout   io.Writer
}

func (a *app) dispatch(args []string) error {
	switch args[0] {
	case "build":
		return a.build(args[1:])
	case "check":
		return a.check(args[1:])
	case "serve":
		return a.serve(args[1:])
	case "version":
		_, _ = fmt.Fprintln(a.stdout, a.version)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) build(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	formatName := fs.String("format", a.cfg.Format, "Output format: json|yaml|toml|mts")
	outDir := fs.String("out", a.cfg.OutDir, "Directory receiving the configuration file")
	sitemap := fs.Bool("sitemap", false, "Also write sitemap.xml and robots.txt")
	publicDir := fs.String("public", filepath.Join(a.cfg.DocsDir, "public"), "Directory receiving sitemap.xml and robots.txt")
	disallowAll := fs.Bool("disallow-all", false, "Write a robots.txt that blocks every crawler")
	var disallow pathList
	fs.Var(&disallow, "disallow", "Site path to disallow in robots.txt (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := render.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	siteCfg, err := site.Build()
	if err != nil {
		return fmt.Errorf("building site config: %w", err)
	}

	opts := service.PublishOptions{
		OutDir: *outDir,
		Format: format,
		Robots: service.RobotsPolicy{DisallowAll: *disallowAll, DisallowPaths: disallow},
	}
	if *sitemap {
		opts.PublicDir = *publicDir
	}

	svc := service.NewSiteService(siteCfg, a.cfg.SiteURL, nil)
	written, err := svc.Publish(opts)
	if err != nil {
		return err
	}
	for _, path := range written {
		_, _ = fmt.Fprintln(a.stdout, path)
	}
	return nil
}

func (a *app) check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	configFile := fs.String("config", "", "Check this configuration file instead of the built-in one")
	docsDir := fs.String("docs", a.cfg.DocsDir, "Markdown content directory; empty skips the link check")
	strict := fs.Bool("strict", false, "Fail on broken links and logged warnings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.recorder.Reset()

	siteCfg, err := a.loadConfig(*configFile)
	if err != nil {
		var verr *site.ValidationError
		if errors.As(err, &verr) {
			for _, issue := range verr.Issues {
				_, _ = fmt.Fprintf(a.stdout, "invalid: %s\n", issue)
			}
		}
		return err
	}
	_, _ = fmt.Fprintf(a.stdout, "config ok: %d nav entries, %d links\n",
		len(siteCfg.ThemeConfig.Nav), len(site.Links(siteCfg)))

	if *docsDir != "" {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report, err := linkcheck.New(*docsDir).Check(ctx, siteCfg)
		if err != nil {
			return fmt.Errorf("checking links: %w", err)
		}
		_, _ = fmt.Fprintf(a.stdout, "links: %d checked, %d external skipped, %d broken\n",
			report.Checked, report.Skipped, len(report.Broken))
		for _, res := range report.Broken {
			_, _ = fmt.Fprintf(a.stdout, "broken: %s %s (%s)\n", res.Ref.Path, res.Ref.Link, res.Problem)
		}
		a.printWarnings()
		if *strict && !report.OK() {
			return fmt.Errorf("%d broken links", len(report.Broken))
		}
	} else {
		a.printWarnings()
	}

	if *strict {
		if n := a.recorder.Count(slog.LevelWarn); n > 0 {
			return fmt.Errorf("%d warnings logged", n)
		}
	}
	return nil
}

// printWarnings summarises the warnings logged during the run by category.
func (a *app) printWarnings() {
	counts := make(map[string]int)
	for _, e := range a.recorder.Entries() {
		counts[e.Category]++
	}
	for _, category := range slices.Sorted(maps.Keys(counts)) {
		_, _ = fmt.Fprintf(a.stdout, "warnings [%s]: %d\n", category, counts[category])
	}
}

// loadConfig reads and validates path, or builds the default configuration
// when path is empty.
func (a *app) loadConfig(path string) (model.SiteConfig, error) {
	if path == "" {
		return site.Build()
	}
	cfg, err := render.ReadFile(path)
	if err != nil {
		return model.SiteConfig{}, err
	}
	if err := site.Validate(cfg); err != nil {
		return model.SiteConfig{}, err
	}
	return cfg, nil
}

func (a *app) serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", a.cfg.ServerAddr(), "Listen address")
	docsDir := fs.String("docs", a.cfg.DocsDir, "Markdown content directory; empty disables link checking")
	watch := fs.Bool("watch", true, "Re-run the link check when content changes")
	disallowAll := fs.Bool("disallow-all", false, "Serve a robots.txt that blocks every crawler")
	var disallow pathList
	fs.Var(&disallow, "disallow", "Site path to disallow in robots.txt (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := render.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	siteCfg, err := site.Build()
	if err != nil {
		return fmt.Errorf("building site config: %w", err)
	}

	var checker *linkcheck.Checker
	if *docsDir != "" {
		if info, err := os.Stat(*docsDir); err == nil && info.IsDir() {
			checker = linkcheck.New(*docsDir)
		} else {
			slog.Warn("docs directory not found, link checking disabled", "dir", *docsDir)
		}
	}
	svc := service.NewSiteService(siteCfg, a.cfg.SiteURL, checker)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if checker != nil {
		if _, err := svc.RefreshLinks(ctx); err != nil {
			slog.Error("initial link check failed", "error", err)
		}
		if *watch {
			watcher, err := service.NewContentWatcher(svc, *docsDir, service.DefaultDebounce)
			if err != nil {
				return fmt.Errorf("starting content watcher: %w", err)
			}
			go watcher.Run(ctx)
		}
	}

	router := handler.NewRouter(svc, handler.RouterOptions{
		Version:       a.version.Version,
		DefaultFormat: format,
		Robots:        service.RobotsPolicy{DisallowAll: *disallowAll, DisallowPaths: disallow},
		RequestLog:    a.cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting preview server", "addr", *addr, "env", a.cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// pathList collects repeated site path flags.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(value string) error {
	if !site.IsInternal(value) {
		return fmt.Errorf("%q is not a site path", value)
	}
	*p = append(*p, value)
	return nil
}
