// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Supported output formats.
var validFormats = []string{"json", "yaml", "toml", "mts"}

// Config holds the tool configuration loaded from environment variables.
// Navigation content is never read from the environment.
type Config struct {
	Env        string `env:"DIRTYDOCS_ENV" envDefault:"development"`
	LogLevel   string `env:"DIRTYDOCS_LOG_LEVEL" envDefault:"info"`
	OutDir     string `env:"DIRTYDOCS_OUT_DIR" envDefault:"./docs/.vitepress"`
	Format     string `env:"DIRTYDOCS_FORMAT" envDefault:"json"`
	SiteURL    string `env:"DIRTYDOCS_SITE_URL" envDefault:"https://dirtybase.dev"`
	DocsDir    string `env:"DIRTYDOCS_DOCS_DIR" envDefault:"./docs"`
	ServerHost string `env:"DIRTYDOCS_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"DIRTYDOCS_SERVER_PORT" envDefault:"5174"`
}

// IsDevelopment returns true if the tool is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the preview server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env parsing alone cannot enforce.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if !isValidFormat(c.Format) {
		return fmt.Errorf("DIRTYDOCS_FORMAT must be one of %s, got %q", strings.Join(validFormats, ", "), c.Format)
	}

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("DIRTYDOCS_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}

	parsed, err := url.Parse(c.SiteURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("DIRTYDOCS_SITE_URL must be an absolute http(s) URL, got %q", c.SiteURL)
	}
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("DIRTYDOCS_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}

	return nil
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
