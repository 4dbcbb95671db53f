package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/service"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/internal/validators"
)

// errorStatusMap lists the errors that are the caller's fault. Everything
// else, upstream failures included, is reported as 500.
var errorStatusMap = map[error]int{
	ErrInvalidJSONBody: http.StatusBadRequest,
	ErrInvalidFormBody: http.StatusBadRequest,
	ErrInvalidLimit:    http.StatusBadRequest,

	validators.ErrMissingType:            http.StatusBadRequest,
	validators.ErrInvalidType:            http.StatusBadRequest,
	validators.ErrInvalidBucketID:        http.StatusBadRequest,
	validators.ErrInvalidAccountNativeID: http.StatusBadRequest,

	adapter.ErrInvalidInventoryType: http.StatusBadRequest,

	service.ErrInvalidLimit: http.StatusBadRequest,

	ErrMissingSlackSignature:  http.StatusUnauthorized,
	ErrStaleSlackTimestamp:    http.StatusUnauthorized,
	ErrSlackSignatureMismatch: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError reports err as JSON. Client errors carry their own message;
// server errors are prefixed with the failed operation, e.g.
// "Failed to restore: Clumio API error: 500 - ...".
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(operation)
		utils.WriteError(w, fmt.Sprintf("%s: %s", operation, err), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, clientMessage(err), status)
}

func clientMessage(err error) string {
	var requestErr *validators.RequestError
	switch {
	case errors.As(err, &requestErr):
		return requestErr.Message
	case errors.Is(err, ErrInvalidJSONBody):
		return app.MsgInvalidJSONBody
	case errors.Is(err, ErrInvalidFormBody):
		return app.MsgInvalidFormBody
	case errors.Is(err, ErrInvalidLimit), errors.Is(err, service.ErrInvalidLimit):
		return app.MsgInvalidLimit
	case errors.Is(err, ErrMissingSlackSignature),
		errors.Is(err, ErrStaleSlackTimestamp),
		errors.Is(err, ErrSlackSignatureMismatch):
		return app.MsgInvalidSlackSignature
	default:
		return err.Error()
	}
}
