// Package filter implements category filtering, free-text search and pagination over a
// read-only catalog, and the query-string state that drives them.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"about-me/pkg/models"
)

// AllLabel is the pseudo-category listed before the real ones
const AllLabel = "All"

// Result is the visible slice of the catalog for a State
type Result struct {
	Entries    []models.CatalogEntry `json:"entries"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"totalPages"`
	Page       int                   `json:"page"`
}

// Empty reports whether nothing is visible for the current page
func (r Result) Empty() bool {
	return len(r.Entries) == 0
}

// Apply filters entries by category and search term, then slices out the requested page.
// The input slice is never modified and the original order is kept.
func Apply(entries []models.CatalogEntry, state State) Result {
	filtered := make([]models.CatalogEntry, 0, len(entries))

	var term string
	if state.Search != "" {
		term = fold(state.Search)
	}

	for _, entry := range entries {
		if !state.IsAll() && entry.Category != state.Category {
			continue
		}
		if term != "" && !matches(entry, term) {
			continue
		}
		filtered = append(filtered, entry)
	}

	page := state.Page
	if page < 1 {
		page = 1
	}

	result := Result{
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered)),
		Page:       page,
		Entries:    []models.CatalogEntry{},
	}

	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return result
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	result.Entries = filtered[start:end]
	return result
}

// TotalPages returns ceil(count / PageSize)
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + PageSize - 1) / PageSize
}

// Categories returns "All" followed by each distinct category in first-seen order
func Categories(entries []models.CatalogEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	categories := []string{AllLabel}
	for _, entry := range entries {
		if _, ok := seen[entry.Category]; ok {
			continue
		}
		seen[entry.Category] = struct{}{}
		categories = append(categories, entry.Category)
	}
	return categories
}

// matches reports whether the folded term occurs in the id, route, type or any media caption
func matches(entry models.CatalogEntry, term string) bool {
	if contains(entry.ID, term) || contains(entry.Route, term) || contains(entry.Type, term) {
		return true
	}
	for _, item := range entry.Media {
		if contains(item.Title, term) || contains(item.Description, term) || contains(item.Content, term) {
			return true
		}
	}
	return false
}

func contains(field, foldedTerm string) bool {
	return field != "" && strings.Contains(fold(field), foldedTerm)
}

// fold applies full Unicode case folding. A new Caser is built per call since Casers
// are stateful and not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
