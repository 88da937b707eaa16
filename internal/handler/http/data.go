package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/MKhiriev/siterelay/models"
)

// writeJSON serialises v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRaw returns an upstream JSON payload unchanged.
func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps err onto the response contract:
//   - non-2xx upstream responses mirror the upstream status and attach the
//     upstream body under "details";
//   - validation sentinels map to their status with the sentinel message;
//   - everything else is a 500 with a fixed message, logged server-side.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) {
		log.Err(err).Int("upstream_status", upstreamErr.StatusCode).Msg("upstream call failed")
		writeJSON(w, upstreamErr.Status(), models.ErrorResponse{
			Error:   "upstream request failed",
			Details: detailsJSON(upstreamErr.Body),
		})
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected failure")
		writeJSON(w, status, models.ErrorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

// detailsJSON embeds an upstream error body into the response. Non-JSON
// bodies are wrapped as a JSON string so the envelope stays valid.
func detailsJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return body
	}

	quoted, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return quoted
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
