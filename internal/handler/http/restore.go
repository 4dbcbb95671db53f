package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/models"
)

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params, err := parseRequestParams(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToRestore)
		return
	}

	req := params.RestoreRequest()
	log.Info().
		Str("func", "*Handler.restore").
		Str("type", req.Type.String()).
		Str("bucket_name", req.BucketName).
		Str("bucket_id", req.BucketID).
		Msg("restore requested")

	result, err := h.services.RestoreService.Restore(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToRestore)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// listRestores returns the audit log, newest first. ?limit= defaults to the
// service default and is capped by the service.
func (h *Handler) listRestores(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToListRestores)
		return
	}

	records, err := h.services.RestoreService.ListRestores(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToListRestores)
		return
	}
	if records == nil {
		records = []models.RestoreRecord{}
	}

	utils.WriteJSON(w, models.RestoreHistoryResponse{Records: records, Length: len(records)}, http.StatusOK)
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}
