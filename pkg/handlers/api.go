package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"about-me/pkg/carousel"
	"about-me/pkg/filter"
	"about-me/pkg/models"
	"about-me/pkg/services"
)

// workResponse mirrors the work page for API clients
type workResponse struct {
	State      filter.State          `json:"state"`
	Query      string                `json:"query"`
	Categories []string              `json:"categories"`
	Entries    []models.CatalogEntry `json:"entries"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"totalPages"`
}

type entryResponse struct {
	Entry    models.CatalogEntry `json:"entry"`
	Carousel carousel.View       `json:"carousel"`
}

// ListWork handles GET /api/work
func (h *Handler) ListWork(w http.ResponseWriter, r *http.Request) {
	state := filter.ParseQuery(r.URL.Query())

	result, err := h.svc.BrowseInternal(r.Context(), state)
	if err != nil {
		h.logger.Error("failed to browse catalog", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Catalog unavailable")
		return
	}
	categories, err := h.svc.CategoryNames(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Catalog unavailable")
		return
	}

	respondJSON(w, http.StatusOK, workResponse{
		State:      state,
		Query:      state.Encode(),
		Categories: categories,
		Entries:    result.Entries,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetWork handles GET /api/work/{id}
func (h *Handler) GetWork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.svc.GetEntryInternal(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			respondError(w, http.StatusNotFound, "Entry not found")
			return
		}
		h.logger.Error("failed to load entry", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Catalog unavailable")
		return
	}

	query := r.URL.Query()
	view := carousel.BuildView(slidesOf(entry), imageIndex(query), carousel.ParseIndicator(query.Get("indicator")))
	respondJSON(w, http.StatusOK, entryResponse{Entry: entry, Carousel: view})
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.GetCategoriesInternal(r.Context())
	if err != nil {
		h.logger.Error("failed to group categories", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Catalog unavailable")
		return
	}

	type category struct {
		Name    string `json:"name"`
		Entries int    `json:"entries"`
	}
	out := make([]category, 0, len(categories))
	for _, c := range categories {
		out = append(out, category{Name: c.Name, Entries: len(c.Entries)})
	}
	respondJSON(w, http.StatusOK, out)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetEntriesInternal(r.Context())
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"source":  h.svc.SourceName(),
		"entries": len(entries),
	})
}
