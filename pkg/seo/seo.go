// Package seo builds page metadata and schema.org payloads
package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
	Type        string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
}

// Page identifies what a single page is about
type Page struct {
	BaseURL     string
	Path        string
	Title       string
	Description string
	Image       string
}

// URL joins the base URL and the page path
func (p Page) URL() string {
	return AbsoluteURL(p.BaseURL, p.Path)
}

// Generate returns the meta tags for a page. Without an image the home OG image is used.
func Generate(p Page) Meta {
	image := p.Image
	if image == "" {
		image = "/images/og/home.jpg"
	}
	image = AbsoluteURL(p.BaseURL, image)
	url := p.URL()
	return Meta{
		Title:       p.Title,
		Description: p.Description,
		Canonical:   url,
		OG: OpenGraph{
			Title:       p.Title,
			Description: p.Description,
			Image:       image,
			URL:         url,
			Type:        "website",
		},
		Twitter: Twitter{
			Card:  "summary_large_image",
			Image: image,
		},
	}
}

// AbsoluteURL resolves path against base unless it is already absolute
func AbsoluteURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base = strings.TrimRight(base, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
