package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"about-me/pkg/carousel"
	"about-me/pkg/config"
	"about-me/pkg/content"
	"about-me/pkg/filter"
	"about-me/pkg/models"
	"about-me/pkg/seo"
	"about-me/pkg/services"
)

// Handler serves the site pages and the JSON API
type Handler struct {
	svc    *services.Service
	cfg    *config.Config
	views  *Renderer
	logger *zap.Logger
}

// NewHandler creates a Handler. A nil logger uses the global zap logger.
func NewHandler(svc *services.Service, views *Renderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.L()
	}
	return &Handler{
		svc:    svc,
		cfg:    svc.Config(),
		views:  views,
		logger: logger.Named("http"),
	}
}

func (h *Handler) person() models.Person {
	return models.Person{Name: h.cfg.PersonName, Avatar: h.cfg.PersonAvatar}
}

func (h *Handler) layout(page seo.Page, active string) Layout {
	page.BaseURL = h.cfg.BaseURL
	person := h.person()
	return Layout{
		Meta: seo.Generate(page),
		Schema: template.JS(seo.JSON(seo.WebPage(page, seo.Author{
			Name:  person.Name,
			URL:   aboutPath,
			Image: person.Avatar,
		}))),
		Person: person,
		Nav:    navLinks(active),
	}
}

// AboutHandler renders the about page from content/about.md
func (h *Handler) AboutHandler(w http.ResponseWriter, r *http.Request) {
	page, err := content.Load(h.cfg.ContentDir, "about")
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			h.serverError(w, r, "failed to load about page", err)
			return
		}
		page = content.Page{Slug: "about", Title: "About"}
	}

	model := AboutPage{
		Layout: h.layout(seo.Page{Path: aboutPath, Title: page.Title, Description: page.Description, Image: page.Image}, aboutPath),
		Page:   page,
	}
	h.render(w, r, http.StatusOK, "about", model)
}

// WorkHandler renders the filtered and paginated catalog
func (h *Handler) WorkHandler(w http.ResponseWriter, r *http.Request) {
	state := filter.ParseQuery(r.URL.Query())

	result, err := h.svc.BrowseInternal(r.Context(), state)
	if err != nil {
		h.serverError(w, r, "failed to browse catalog", err)
		return
	}
	categories, err := h.svc.CategoryNames(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list categories", err)
		return
	}

	layout := h.layout(seo.Page{Path: workPath, Title: workTitle, Description: workDescription}, workPath)
	h.logger.Debug("generating work page",
		zap.String("category", state.Category),
		zap.Int("page", state.Page),
		zap.String("search", state.Search),
		zap.Int("visible", len(result.Entries)),
	)
	h.render(w, r, http.StatusOK, "work", buildWorkPage(layout, state, result, categories))
}

// EntryHandler renders one entry with its carousel at ?image=N
func (h *Handler) EntryHandler(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.entry(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	mode := carousel.ParseIndicator(query.Get("indicator"))
	page := seo.Page{
		Path:        entryHref(entry),
		Title:       entry.Type + " " + entry.Category,
		Description: coverDescription(entry),
	}
	if cover, ok := entry.Cover(); ok {
		page.Image = cover.Src
	}
	layout := h.layout(page, workPath)

	images := make([]string, 0, len(entry.Media))
	for _, item := range entry.Media {
		images = append(images, item.Src)
	}
	page.BaseURL = h.cfg.BaseURL
	layout.Schema = template.JS(seo.JSON([]any{
		seo.WebPage(page, seo.Author{Name: h.cfg.PersonName, URL: aboutPath}),
		seo.ImageGallery(page, images),
	}))

	model := buildEntryPage(layout, entry, imageIndex(query), mode, workBackHref(r))
	h.render(w, r, http.StatusOK, "entry", model)
}

// SlideHandler renders the carousel fragment swapped in by htmx
func (h *Handler) SlideHandler(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.entry(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	card := newCard(entry, imageIndex(query), carousel.ParseIndicator(query.Get("indicator")))
	h.render(w, r, http.StatusOK, "slide", card)
}

// entry resolves {id} and answers 404 when it is unknown
func (h *Handler) entry(w http.ResponseWriter, r *http.Request) (models.CatalogEntry, bool) {
	id := chi.URLParam(r, "id")
	entry, err := h.svc.GetEntryInternal(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			h.logger.Info("entry not found", zap.String("id", id))
			http.NotFound(w, r)
			return models.CatalogEntry{}, false
		}
		h.serverError(w, r, "failed to load entry", err)
		return models.CatalogEntry{}, false
	}
	return entry, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, view string, data any) {
	if err := h.views.Render(w, status, view, data); err != nil {
		h.serverError(w, r, "failed to render view", err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg, zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// workBackHref returns to the work listing the visitor came from, if any
func workBackHref(r *http.Request) string {
	state := filter.ParseRawQuery(r.URL.Query().Get("from"))
	return state.Href(workPath)
}

func coverDescription(entry models.CatalogEntry) string {
	if cover, ok := entry.Cover(); ok {
		return cover.Description
	}
	return ""
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
