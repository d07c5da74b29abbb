package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"about-me/pkg/logging"
)

// NewRouter configures all routes and returns the router
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", h.AboutHandler)
	r.Get(aboutPath, h.AboutHandler)
	r.Get(workPath, h.WorkHandler)
	r.Get(workPath+"/{id}", h.EntryHandler)
	r.Get(workPath+"/{id}/slide", h.SlideHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/work", h.ListWork)
		r.Get("/work/{id}", h.GetWork)
		r.Get("/categories", h.ListCategories)
	})
	r.Get("/healthz", h.Health)

	if h.cfg.AdminEnabled() {
		r.Route("/"+h.cfg.SecretKey, func(r chi.Router) {
			r.Post("/reload", h.ReloadHandler)
			r.Get("/media", h.MediaReportHandler)
		})
		h.logger.Info("admin routes enabled")
	}

	fileServer := http.FileServer(http.Dir(h.cfg.PublicDir))
	r.Handle("/images/*", fileServer)
	r.Handle("/css/*", fileServer)
	r.Handle("/js/*", fileServer)
	r.Handle("/favicon.ico", fileServer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug("route not found", zap.String("path", r.URL.Path))
		http.NotFound(w, r)
	})
	return r
}
