package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// ReloadHandler handles POST /{secret}/reload by flushing the catalog caches
// and loading the catalog again
func (h *Handler) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("reloading catalog", zap.String("source", h.svc.SourceName()))

	h.svc.Reload()
	entries, err := h.svc.GetEntriesInternal(r.Context())
	if err != nil {
		h.logger.Error("error reloading catalog", zap.Error(err))
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Catalog reloaded successfully",
		"entries": len(entries),
	})
}

// MediaReportHandler handles GET /{secret}/media with the result of checking every media item
func (h *Handler) MediaReportHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("checking media")

	reports, err := h.svc.CheckMedia(r.Context(), nil)
	if err != nil {
		h.logger.Error("error checking media", zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	failed := 0
	for _, report := range reports {
		if !report.OK() {
			failed++
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"checked": len(reports),
		"failed":  failed,
		"reports": reports,
	})
}
