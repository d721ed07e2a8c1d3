// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command dirtydocs builds, checks and previews the Dirtybase documentation
// site configuration.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/shiftrightonce/dirtybase-docs/internal/config"
	"github.com/shiftrightonce/dirtybase-docs/internal/logging"
	"github.com/shiftrightonce/dirtybase-docs/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func versionInfo() version.Info {
	return version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}
}

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "dirtydocs - Dirtybase documentation site configuration\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [flags]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Commands:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  build     Write the site configuration (and optionally sitemap.xml, robots.txt)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  check     Validate a configuration and resolve its links against the docs\n")
		_, _ = fmt.Fprintf(os.Stderr, "  serve     Run the preview server\n")
		_, _ = fmt.Fprintf(os.Stderr, "  version   Show version information\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_ENV          Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_LOG_LEVEL    debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_OUT_DIR      Output directory for build (default: ./docs/.vitepress)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_FORMAT       json|yaml|toml|mts (default: json)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_SITE_URL     Public site URL (default: https://dirtybase.dev)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_DOCS_DIR     Markdown content directory (default: ./docs)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_SERVER_HOST  Preview server host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DIRTYDOCS_SERVER_PORT  Preview server port (default: 5174)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/shiftrightonce/dirtybase\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Println(versionInfo())
		os.Exit(0)
	}

	if err := run(flag.Args()); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	recorder := logging.Setup(os.Stdout, cfg.LogLevel)

	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}

	a := &app{
		cfg:      cfg,
		recorder: recorder,
		version:  versionInfo(),
		stdout:   os.Stdout,
	}
	return a.dispatch(args)
}
