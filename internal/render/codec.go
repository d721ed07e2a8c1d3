// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/shiftrightonce/dirtybase-docs/internal/model"
)

var mtsTemplate = template.Must(template.New("config.mts").Parse(`// Generated by dirtydocs. Do not edit.
import { defineConfig } from 'vitepress'

export default defineConfig({{.}})
`))

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg model.SiteConfig, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
	case FormatMTS:
		body, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding mts: %w", err)
		}
		if err := mtsTemplate.Execute(w, string(body)); err != nil {
			return fmt.Errorf("encoding mts: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// Marshal returns cfg encoded in the given format.
func Marshal(cfg model.SiteConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a configuration from r. Unknown fields are rejected so that
// typos in hand-written files surface instead of being dropped.
func Decode(r io.Reader, format Format) (model.SiteConfig, error) {
	var cfg model.SiteConfig
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return model.SiteConfig{}, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return model.SiteConfig{}, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return model.SiteConfig{}, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return model.SiteConfig{}, fmt.Errorf("format %q cannot be decoded", format)
	}
	return cfg, nil
}
