package models

// CatalogEntry represents one displayable work or hobby item with its media
type CatalogEntry struct {
	ID           string      `json:"id" yaml:"id"`
	Category     string      `json:"category" yaml:"category"`
	Type         string      `json:"type" yaml:"type"`
	Route        string      `json:"route" yaml:"route"`
	Media        []MediaItem `json:"media" yaml:"media"`
	Links        []Avatar    `json:"links,omitempty" yaml:"links,omitempty"`
	ExternalLink string      `json:"externalLink,omitempty" yaml:"external_link,omitempty"`
}

// MediaItem represents a single image of an entry with its captions
type MediaItem struct {
	Src         string `json:"src" yaml:"src"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content" yaml:"content"`
}

// Avatar represents a small linked image shown on an entry card
type Avatar struct {
	Src string `json:"src" yaml:"src"`
}

// Cover returns the first media item of the entry, if any
func (e CatalogEntry) Cover() (MediaItem, bool) {
	if len(e.Media) == 0 {
		return MediaItem{}, false
	}
	return e.Media[0], true
}

// Category groups entries sharing the same category value
type Category struct {
	Name    string         `json:"name"`
	Entries []CatalogEntry `json:"entries"`
}

// Person describes the site owner, used as page author
type Person struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
