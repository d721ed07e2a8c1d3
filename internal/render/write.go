// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/shiftrightonce/dirtybase-docs/internal/model"
)

// WriteFile encodes cfg and atomically replaces path with the result.
// Readers never observe a partially written file.
func WriteFile(path string, cfg model.SiteConfig, format Format) error {
	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}
	return WriteBytes(path, data)
}

// WriteBytes atomically replaces path with data, creating parent directories.
func WriteBytes(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			slog.Debug("cleanup pending file", "path", path, "error", err)
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes a configuration file, picking the format from its extension.
func ReadFile(path string) (model.SiteConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return model.SiteConfig{}, err
	}
	if !format.Decodable() {
		return model.SiteConfig{}, fmt.Errorf("format %q cannot be decoded", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.SiteConfig{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := Decode(f, format)
	if err != nil {
		return model.SiteConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}
