// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides path helpers and heading anchor generation with
// Unicode normalization support.
package util

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// anchorRegex matches runs of characters that are not letters, digits or hyphens
	anchorRegex = regexp.MustCompile(`[^\p{L}\p{N}-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Anchor converts heading text to the fragment id the site generator assigns
// to it. Compatibility forms are folded and accents stripped, punctuation,
// underscores and spaces become single hyphens, and ids starting with a digit
// get an underscore prefix. Repeated headings are numbered by AnchorSet.
func Anchor(heading string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, heading)

	result = strings.ToLower(result)
	result = anchorRegex.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// AnchorSet assigns anchors to the headings of one page in document order.
// An id already taken on the page gets the first free -1, -2, ... suffix.
type AnchorSet struct {
	used map[string]bool
}

// Next returns the anchor for the next heading with the given text.
func (a *AnchorSet) Next(heading string) string {
	if a.used == nil {
		a.used = make(map[string]bool)
	}
	base := Anchor(heading)
	id := base
	for i := 1; a.used[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	a.used[id] = true
	return id
}
