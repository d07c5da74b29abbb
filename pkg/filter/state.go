package filter

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// AllCategories is the category sentinel that disables category filtering
	AllCategories = "all"

	// PageSize is the number of entries shown per page
	PageSize = 4

	paramCategory = "category"
	paramPage     = "page"
	paramSearch   = "search"
)

// State is the filter state carried by the URL query string
type State struct {
	Category string `json:"category"`
	Page     int    `json:"page"`
	Search   string `json:"search"`
}

// DefaultState returns the state of an empty query string
func DefaultState() State {
	return State{Category: AllCategories, Page: 1}
}

// ParseQuery derives a State from query parameters. Missing or malformed values fall back
// to their defaults; repeated parameters use their first value.
func ParseQuery(values url.Values) State {
	state := DefaultState()
	if values == nil {
		return state
	}

	if category := first(values, paramCategory); category != "" {
		state.Category = normalizeCategory(category)
	}

	if raw := strings.TrimSpace(first(values, paramPage)); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			state.Page = page
		}
	}

	state.Search = first(values, paramSearch)
	return state
}

// ParseRawQuery parses a raw query string such as "category=games&page=2".
// A leading "?" is accepted.
func ParseRawQuery(raw string) State {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil && len(values) == 0 {
		return DefaultState()
	}
	return ParseQuery(values)
}

// Values serializes the state, omitting parameters at their default value
func (s State) Values() url.Values {
	values := url.Values{}
	if s.Category != "" && s.Category != AllCategories {
		values.Set(paramCategory, s.Category)
	}
	if s.Page > 1 {
		values.Set(paramPage, strconv.Itoa(s.Page))
	}
	if s.Search != "" {
		values.Set(paramSearch, s.Search)
	}
	return values
}

// Encode returns the canonical query string of the state without a leading "?"
func (s State) Encode() string {
	return s.Values().Encode()
}

// Href returns path with the canonical query string appended
func (s State) Href(path string) string {
	query := s.Encode()
	if query == "" {
		return path
	}
	return path + "?" + query
}

// IsAll reports whether category filtering is disabled
func (s State) IsAll() bool {
	return s.Category == "" || s.Category == AllCategories
}

// SelectCategory switches the category and resets the page
func (s State) SelectCategory(category string) State {
	s.Category = normalizeCategory(category)
	s.Page = 1
	return s
}

// SelectPage moves to the given page, keeping category and search
func (s State) SelectPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// SubmitSearch commits a search term and restarts at the first page
func (s State) SubmitSearch(term string) State {
	s.Search = term
	s.Page = 1
	return s
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return AllCategories
	}
	return category
}

func first(values url.Values, key string) string {
	v := values[key]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}
