// Package seo builds the crawler-facing artefacts of the documentation site.
package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapPage contains data needed to add a documentation page to the sitemap.
type SitemapPage struct {
	Path      string // site-relative path, e.g. /docs/v1/installation
	TopLevel  bool   // linked from the top navigation
	UpdatedAt time.Time
}

// SitemapBuilder builds sitemap XML from site paths.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
	seen    map[string]bool
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		urls:    make([]SitemapURL, 0),
		seen:    make(map[string]bool),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.add(SitemapURL{
		Loc:        b.siteURL + "/",
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddPage adds a documentation page to the sitemap.
// The homepage path is routed to AddHomepage; fragments are dropped.
func (b *SitemapBuilder) AddPage(page SitemapPage) {
	path := page.Path
	if i := strings.IndexAny(path, "#?"); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == "/" {
		b.AddHomepage()
		return
	}

	url := SitemapURL{
		Loc:        b.siteURL + path,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "0.8",
	}
	if page.TopLevel {
		url.Priority = "0.9"
	}
	if !page.UpdatedAt.IsZero() {
		url.LastMod = page.UpdatedAt.UTC().Format(time.RFC3339)
	}
	b.add(url)
}

// AddPages adds multiple pages to the sitemap.
func (b *SitemapBuilder) AddPages(pages []SitemapPage) {
	for _, p := range pages {
		b.AddPage(p)
	}
}

func (b *SitemapBuilder) add(url SitemapURL) {
	if b.seen[url.Loc] {
		return
	}
	b.seen[url.Loc] = true
	b.urls = append(b.urls, url)
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateSitemap is a convenience function to generate a sitemap from site paths.
func GenerateSitemap(siteURL string, pages []SitemapPage) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL)
	builder.AddHomepage()
	builder.AddPages(pages)
	return builder.Build()
}
