// Package api holds the JSON response helpers and the mapping from
// domain errors to HTTP responses.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard error body. MaxAllowed is only set for
// over-target deposit rejections so the client can show the remainder.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Code       string   `json:"code"`
	MaxAllowed *float64 `json:"maxAllowed,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, message, code string) {
	JSON(w, status, ErrorResponse{Error: message, Code: code})
}

// Decode reads a JSON request body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
