// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render serialises site configurations for the site generator and
// reads them back for validation.
package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output encoding for a site configuration.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatMTS  Format = "mts" // VitePress config module, encode only
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatMTS}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "mts", "ts":
		return FormatMTS, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot determine format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Decodable reports whether configurations in this format can be read back.
func (f Format) Decodable() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// ContentType returns the HTTP content type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	case FormatMTS:
		return "text/typescript"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the conventional file name for the format.
func (f Format) FileName() string {
	if f == FormatMTS {
		return "config.mts"
	}
	return "config." + string(f)
}
