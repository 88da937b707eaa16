package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/models"
)

// checkoutForward relays any method under /foxycart/* to the cart-platform
// API. The response of a successful relay is mirrored verbatim.
func (h *Handler) checkoutForward(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("unable to read checkout body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unable to read request body"})
		return
	}

	result, err := h.services.Checkout.Forward(r.Context(), r.Method, chi.URLParam(r, "*"), r.URL.Query(), body)
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
