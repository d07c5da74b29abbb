package seo

import (
	"encoding/json"
)

// Author is the person credited for a page
type Author struct {
	Name  string
	URL   string
	Image string
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// WebPage returns a WebPage schema with an optional Person author.
func WebPage(p Page, author Author) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"@id":         p.URL(),
		"url":         p.URL(),
		"name":        p.Title,
		"description": p.Description,
	}
	if p.Image != "" {
		m["image"] = AbsoluteURL(p.BaseURL, p.Image)
	}
	if author.Name != "" {
		person := map[string]any{"@type": "Person", "name": author.Name}
		if author.URL != "" {
			person["url"] = AbsoluteURL(p.BaseURL, author.URL)
		}
		if author.Image != "" {
			person["image"] = AbsoluteURL(p.BaseURL, author.Image)
		}
		m["author"] = person
	}
	return m
}

// ImageGallery returns an ImageGallery schema listing the given image URLs.
func ImageGallery(p Page, images []string) map[string]any {
	items := make([]map[string]any, 0, len(images))
	for _, src := range images {
		items = append(items, map[string]any{
			"@type":      "ImageObject",
			"contentUrl": AbsoluteURL(p.BaseURL, src),
		})
	}
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "ImageGallery",
		"url":         p.URL(),
		"name":        p.Title,
		"description": p.Description,
		"image":       items,
	}
}
