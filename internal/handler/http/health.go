package http

import (
	"net/http"

	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/models"
)

// health is a liveness probe. It never calls the upstream or the store.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusOK}, http.StatusOK)
}
