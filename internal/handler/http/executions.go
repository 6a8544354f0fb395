package http

import (
	"net/http"

	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/utils"
	"github.com/MKhiriev/yousign-node/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getExecution(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.ExecutionService.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getExecution").Msg("error reading execution")
		writeServiceError(w, err)
		return
	}
	if len(records) == 0 {
		utils.WriteError(w, "execution not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getOrphanedDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.ExecutionService.GetOrphanedDocuments(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOrphanedDocuments").Msg("error reading orphaned documents")
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []models.ExecutionRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
