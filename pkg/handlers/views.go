package handlers

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"about-me/pkg/carousel"
	"about-me/pkg/content"
	"about-me/pkg/filter"
	"about-me/pkg/models"
	"about-me/pkg/seo"
)

const (
	workPath  = "/work"
	aboutPath = "/about"

	workTitle       = "My Diverse Portfolio"
	workDescription = "Explore a collection of my pastimes, projects, and passions, from competitive games to cherished collections."
)

// Layout carries what every full page needs
type Layout struct {
	Meta   seo.Meta
	Schema template.JS
	Person models.Person
	Nav    []NavLink
}

// NavLink is an entry of the site header
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// AboutPage is the model of the about view
type AboutPage struct {
	Layout
	Page content.Page
}

// CategoryLink is one category filter button
type CategoryLink struct {
	Label  string
	Href   string
	Active bool
}

// PageLink is one pagination button
type PageLink struct {
	Number int
	Href   string
	Active bool
}

// Card is one catalog entry in the work grid
type Card struct {
	ID           string
	Title        string
	Type         string
	Category     string
	Description  string
	Content      string
	Href         string
	ExternalLink string
	Avatars      []string
	Caption      models.MediaItem
	Carousel     carousel.View
	Prev         SlideLink
	Next         SlideLink
	Markers      []SlideLink
}

// SlideLink points at one slide both as a page and as an htmx fragment
type SlideLink struct {
	Index    int
	Href     string
	Fragment string
	Src      string
	Alt      string
	Active   bool
}

// SearchForm carries the search input and the category it is scoped to
type SearchForm struct {
	Action      string
	Value       string
	Category    string
	Placeholder string
}

// WorkPage is the model of the work view
type WorkPage struct {
	Layout
	Heading     string
	Intro       string
	Section     string
	CTAHeading  string
	CTAText     string
	EmptyText   string
	State       filter.State
	Search      SearchForm
	Categories  []CategoryLink
	Cards       []Card
	Pages       []PageLink
	Total       int
	TotalPages  int
	GridColumns string
	Empty       bool
}

// EntryPage is the model of a single entry with its carousel
type EntryPage struct {
	Layout
	Card
	BackHref string
}

func navLinks(active string) []NavLink {
	return []NavLink{
		{Label: "About", Href: aboutPath, Active: active == aboutPath},
		{Label: "Work", Href: workPath, Active: active == workPath},
	}
}

// gridColumns renders the collections category as a single column
func gridColumns(state filter.State) string {
	if strings.EqualFold(state.Category, "collections") {
		return "1"
	}
	return "2"
}

func categoryLinks(state filter.State, categories []string) []CategoryLink {
	links := make([]CategoryLink, 0, len(categories))
	for _, name := range categories {
		next := state.SelectCategory(name)
		links = append(links, CategoryLink{
			Label:  name,
			Href:   next.Href(workPath),
			Active: next.Category == state.Category,
		})
	}
	return links
}

// pageLinks is empty when everything fits on one page
func pageLinks(state filter.State, totalPages int) []PageLink {
	if totalPages <= 1 {
		return nil
	}
	links := make([]PageLink, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		links = append(links, PageLink{
			Number: n,
			Href:   state.SelectPage(n).Href(workPath),
			Active: n == state.Page,
		})
	}
	return links
}

func slidesOf(entry models.CatalogEntry) []carousel.Slide {
	slides := make([]carousel.Slide, 0, len(entry.Media))
	for _, item := range entry.Media {
		alt := item.Title
		if alt == "" {
			alt = entry.Type
		}
		slides = append(slides, carousel.Slide{Src: item.Src, Alt: alt})
	}
	return slides
}

func entryHref(entry models.CatalogEntry) string {
	return "/" + strings.TrimPrefix(entry.Route, "/")
}

func newCard(entry models.CatalogEntry, active int, mode carousel.Indicator) Card {
	view := carousel.BuildView(slidesOf(entry), active, mode)
	card := Card{
		ID:           entry.ID,
		Title:        entry.Type,
		Type:         entry.Type,
		Category:     entry.Category,
		Href:         entryHref(entry),
		ExternalLink: entry.ExternalLink,
		Carousel:     view,
	}
	if !view.Empty() {
		item := entry.Media[view.ActiveIndex]
		card.Caption = item
		if item.Title != "" {
			card.Title = item.Title
		}
		card.Description = item.Description
		card.Content = item.Content
	}
	for _, avatar := range entry.Links {
		card.Avatars = append(card.Avatars, avatar.Src)
	}
	if view.HasControls {
		card.Prev = slideLink(entry, view.PrevIndex, mode)
		card.Next = slideLink(entry, view.NextIndex, mode)
		for _, marker := range view.Markers {
			link := slideLink(entry, marker.Index, mode)
			link.Src, link.Alt, link.Active = marker.Src, marker.Alt, marker.Active
			card.Markers = append(card.Markers, link)
		}
	}
	return card
}

func slideLink(entry models.CatalogEntry, index int, mode carousel.Indicator) SlideLink {
	query := slideQuery(index, mode)
	link := SlideLink{
		Index:    index,
		Href:     entryHref(entry),
		Fragment: entryHref(entry) + "/slide",
	}
	if query != "" {
		link.Href += "?" + query
		link.Fragment += "?" + query
	}
	return link
}

func buildWorkPage(layout Layout, state filter.State, result filter.Result, categories []string) WorkPage {
	from := state.Encode()
	cards := make([]Card, 0, len(result.Entries))
	for _, entry := range result.Entries {
		card := newCard(entry, 0, carousel.IndicatorLine)
		if from != "" {
			card.Href += "?" + url.Values{"from": {from}}.Encode()
		}
		cards = append(cards, card)
	}

	category := ""
	if !state.IsAll() {
		category = state.Category
	}

	return WorkPage{
		Layout:     layout,
		Heading:    workTitle,
		Intro:      workDescription,
		Section:    "My Hobbies & Collections",
		CTAHeading: "Dive Deeper into My Interests?",
		CTAText:    "Every experience shapes my journey. Connect with me to share your own passions!",
		EmptyText:  "No projects found for the current filters.",
		State:      state,
		Search: SearchForm{
			Action:      workPath,
			Value:       state.Search,
			Category:    category,
			Placeholder: "Search by title, type, description...",
		},
		Categories:  categoryLinks(state, categories),
		Cards:       cards,
		Pages:       pageLinks(state, result.TotalPages),
		Total:       result.Total,
		TotalPages:  result.TotalPages,
		GridColumns: gridColumns(state),
		Empty:       result.Empty(),
	}
}

func buildEntryPage(layout Layout, entry models.CatalogEntry, active int, mode carousel.Indicator, back string) EntryPage {
	return EntryPage{Layout: layout, Card: newCard(entry, active, mode), BackHref: back}
}

// imageIndex reads the active slide from ?image=N, defaulting to 0
func imageIndex(values url.Values) int {
	n, err := strconv.Atoi(strings.TrimSpace(values.Get("image")))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// slideQuery encodes the slide index and indicator mode, omitting defaults
func slideQuery(index int, mode carousel.Indicator) string {
	values := url.Values{}
	if index > 0 {
		values.Set("image", strconv.Itoa(index))
	}
	if mode == carousel.IndicatorThumbnail {
		values.Set("indicator", string(mode))
	}
	return values.Encode()
}
