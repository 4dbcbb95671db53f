package http

import (
	"net/http"

	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/utils"
)

func (h *Handler) inventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params, err := parseRequestParams(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToRetrieveInventory)
		return
	}

	req := params.InventoryRequest()
	log.Debug().Str("func", "*Handler.inventory").Str("type", req.Type.String()).Msg("inventory requested")

	result, err := h.services.InventoryService.GetInventory(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToRetrieveInventory)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
