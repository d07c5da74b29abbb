package filter

import (
	"net/url"

	"about-me/pkg/models"
)

// Navigator replaces the current route's query string. It is called with the canonical
// query (no leading "?"), which may be empty.
type Navigator func(query string)

// Controller keeps the filter state of one page view in sync with its URL. The URL is the
// source of truth: local interactions only navigate, and the state follows once Sync is
// called with the resulting query.
type Controller struct {
	entries  []models.CatalogEntry
	navigate Navigator

	state State
	input string
}

// NewController creates a controller over a read-only entry list. A nil navigator
// applies navigations locally.
func NewController(entries []models.CatalogEntry, navigate Navigator) *Controller {
	c := &Controller{
		entries: entries,
		state:   DefaultState(),
	}
	if navigate == nil {
		navigate = func(query string) {
			c.SyncRaw(query)
		}
	}
	c.navigate = navigate
	return c
}

// Sync re-derives the state from the query parameters. It runs on first load and on
// every external query change, including back/forward navigation.
func (c *Controller) Sync(values url.Values) {
	c.state = ParseQuery(values)
	c.input = c.state.Search
}

// SyncRaw is Sync for a raw query string
func (c *Controller) SyncRaw(raw string) {
	c.state = ParseRawQuery(raw)
	c.input = c.state.Search
}

// State returns the committed filter state
func (c *Controller) State() State {
	return c.state
}

// Input returns the uncommitted contents of the search box
func (c *Controller) Input() string {
	return c.input
}

// SetSearchInput updates the search box buffer without filtering or navigating
func (c *Controller) SetSearchInput(text string) {
	c.input = text
}

// SubmitSearch commits the search box buffer and navigates to the first page
func (c *Controller) SubmitSearch() {
	c.commit(c.state.SubmitSearch(c.input))
}

// SelectCategory commits a category immediately and resets the page
func (c *Controller) SelectCategory(category string) {
	c.commit(c.state.SelectCategory(category))
}

// SelectPage commits a page number immediately
func (c *Controller) SelectPage(page int) {
	c.commit(c.state.SelectPage(page))
}

// Result returns the entries visible for the committed state
func (c *Controller) Result() Result {
	return Apply(c.entries, c.state)
}

// Categories returns the category buttons, "All" first
func (c *Controller) Categories() []string {
	return Categories(c.entries)
}

func (c *Controller) commit(next State) {
	c.state = next
	c.navigate(next.Encode())
}
