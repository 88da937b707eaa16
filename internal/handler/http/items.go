package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/models"
)

func (h *Handler) liveItems(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Items.LiveItems(r.Context(), chi.URLParam(r, "collectionID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) updateLiveItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.LiveItemsUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid live items body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	payload, err := h.services.Items.UpdateLiveItems(r.Context(), chi.URLParam(r, "collectionID"), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) collectionItems(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Items.CollectionItems(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid create item body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	payload, err := h.services.Items.CreateItem(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusCreated, payload)
}
