package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/clumio-bot/models"
)

// marshalFailureBody is sent when the response value itself cannot be
// encoded. It is a constant so the error path cannot fail again.
const marshalFailureBody = `{"error":"error writing data to JSON"}`

// WriteJSON encodes data and writes it with the given status code and a JSON
// content type. It returns the number of body bytes written.
//
// If data cannot be encoded, a 500 with a fixed JSON error body is written
// instead and the encoding error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes {"error": message} with the given status code.
//
// Example usage:
//
//	WriteError(w, "Missing required parameter: type", http.StatusBadRequest)
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
