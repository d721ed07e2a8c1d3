// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package linkcheck

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/shiftrightonce/dirtybase-docs/internal/util"
)

var frontmatterDelim = []byte("---")

// Page is the parsed outline of a markdown document.
type Page struct {
	Title   string          // frontmatter title, else the first level-1 heading
	Anchors map[string]bool // fragment ids of every heading
}

type frontmatter struct {
	Title string `yaml:"title"`
}

// ParsePage extracts the title and heading anchors from markdown source.
func ParsePage(source []byte) (Page, error) {
	meta, body, err := splitFrontmatter(source)
	if err != nil {
		return Page{}, err
	}

	page := Page{Title: meta.Title, Anchors: make(map[string]bool)}
	var anchors util.AnchorSet
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := nodeText(heading, body)
		page.Anchors[anchors.Next(title)] = true
		if page.Title == "" && heading.Level == 1 {
			page.Title = title
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return Page{}, fmt.Errorf("walking markdown: %w", err)
	}
	return page, nil
}

// splitFrontmatter separates a leading YAML block delimited by --- lines.
func splitFrontmatter(source []byte) (frontmatter, []byte, error) {
	var meta frontmatter
	src := bytes.TrimPrefix(source, []byte("\ufeff"))

	lines := bytes.SplitAfter(src, []byte("\n"))
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return meta, source, nil
	}

	offset := len(lines[0])
	for _, line := range lines[1:] {
		if isDelimiter(line) {
			block := src[len(lines[0]):offset]
			if err := yaml.Unmarshal(block, &meta); err != nil {
				return meta, nil, fmt.Errorf("parsing frontmatter: %w", err)
			}
			return meta, src[offset+len(line):], nil
		}
		offset += len(line)
	}
	// Unterminated block: treat the whole file as markdown.
	return meta, source, nil
}

func isDelimiter(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, "\r\n"), frontmatterDelim)
}

// nodeText concatenates the literal text below n.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
