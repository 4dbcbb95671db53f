package models

// HealthStatusOK is the only status the liveness probe reports.
const HealthStatusOK = "ok"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body of every non-2xx response produced by the
// bot itself.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RestoreHistoryResponse is the body of GET /restores.
type RestoreHistoryResponse struct {
	Records []RestoreRecord `json:"records"`

	// Length is the number of entries in Records.
	Length int `json:"length"`
}
