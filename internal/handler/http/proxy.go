package http

import (
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/MKhiriev/siterelay/models"
)

// collapsedScheme repairs "https:/host" → "https://host". Routers collapse
// the double slash of a URL embedded in the request path.
var collapsedScheme = regexp.MustCompile(`^(https?):/([^/])`)

// relayForward relays any method under /proxy/* to the destination URL
// carried in the path itself. Destination checks happen in the forwarder.
func (h *Handler) relayForward(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("unable to read proxy body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unable to read request body"})
		return
	}

	target := collapsedScheme.ReplaceAllString(chi.URLParam(r, "*"), "$1://$2")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	result, err := h.services.Relay.Forward(r.Context(), upstream.ForwardRequest{
		Method: r.Method,
		URL:    target,
		Header: r.Header,
		Body:   body,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if contentType := result.Header.Get("Content-Type"); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(result.StatusCode)
	_, _ = w.Write(result.Body)
}
