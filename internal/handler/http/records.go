package http

import (
	"net/http"
)

func (h *Handler) recordsPing(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Records.Ping(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}
