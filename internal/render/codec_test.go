// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftrightonce/dirtybase-docs/internal/site"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want, err := site.Build()
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(want, format)
			require.NoError(t, err)

			got, err := Decode(bytes.NewReader(data), format)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_JSONShape(t *testing.T) {
	cfg, err := site.Build()
	require.NoError(t, err)

	data, err := Marshal(cfg, FormatJSON)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "Dirtybase", raw["title"])
	themeConfig, ok := raw["themeConfig"].(map[string]any)
	require.True(t, ok, "themeConfig missing")
	assert.Contains(t, themeConfig, "nav")
	assert.Contains(t, themeConfig, "sidebar")
	assert.Contains(t, themeConfig, "socialLinks")

	sidebar := themeConfig["sidebar"].([]any)
	root := sidebar[0].(map[string]any)
	assert.NotContains(t, root, "text", "unlabelled root group should omit text")
	assert.NotContains(t, root, "collapsed", "unlabelled root group should omit collapsed")

	first := root["items"].([]any)[0].(map[string]any)
	assert.Equal(t, false, first["collapsed"])
	leaf := first["items"].([]any)[0].(map[string]any)
	assert.NotContains(t, leaf, "items")
	assert.NotContains(t, leaf, "collapsed")
}

func TestEncode_MTS(t *testing.T) {
	cfg, err := site.Build()
	require.NoError(t, err)

	data, err := Marshal(cfg, FormatMTS)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "// Generated by dirtydocs."))
	assert.Contains(t, out, "import { defineConfig } from 'vitepress'")
	assert.Contains(t, out, "export default defineConfig({")
	assert.Contains(t, out, `"link": "https://github.com/shiftrightonce/dirtybase"`)
	assert.NotContains(t, out, "&#34;", "JSON body must not be HTML escaped")
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, site.Default(), Format("xml"))
	assert.Error(t, err)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{name: "json", format: FormatJSON, input: `{"title":"T","description":"D","theme":{}}`},
		{name: "yaml", format: FormatYAML, input: "title: T\ndescription: D\nsidebarr: []\n"},
		{name: "toml", format: FormatTOML, input: "title = 'T'\ndescription = 'D'\nnav = []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecode_MTSNotSupported(t *testing.T) {
	_, err := Decode(strings.NewReader("export default {}"), FormatMTS)
	assert.Error(t, err)
}

func TestWriteFile_ReadFile(t *testing.T) {
	cfg, err := site.Build()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		path := filepath.Join(dir, "nested", format.FileName())
		require.NoError(t, WriteFile(path, cfg, format))

		got, err := ReadFile(path)
		require.NoError(t, err)
		if diff := cmp.Diff(cfg, got); diff != "" {
			t.Errorf("%s: file round trip mismatch (-want +got):\n%s", format, diff)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files should be left behind")
}

func TestWriteFile_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.mts")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, WriteFile(path, site.Default(), FormatMTS))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "defineConfig")
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "config"))
	assert.Error(t, err, "missing extension")

	_, err = ReadFile(filepath.Join(dir, "config.mts"))
	assert.Error(t, err, "mts is not decodable")

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err, "missing file")
}
