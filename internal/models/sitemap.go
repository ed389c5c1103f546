// internal/models/sitemap.go
package models

import "encoding/xml"

// SitemapNamespace is the sitemaps.org 0.9 schema namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet represents the root element of an XML sitemap.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single URL entry in the sitemap.
type URL struct {
	Loc string `xml:"loc"`
}

// NewURLSet creates an empty sitemap bound to the 0.9 namespace.
func NewURLSet() *URLSet {
	return &URLSet{Xmlns: SitemapNamespace}
}

// Add appends a location, keeping insertion order.
func (s *URLSet) Add(loc string) {
	s.URLs = append(s.URLs, URL{Loc: loc})
}

// Len returns the number of entries.
func (s *URLSet) Len() int {
	return len(s.URLs)
}
