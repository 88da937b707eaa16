package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/models"
)

func (h *Handler) testAuth(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Pages.AuthInfo(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) pageMetadata(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Pages.Metadata(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) updatePageMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.PageMetadataUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid page metadata body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	payload, err := h.services.Pages.UpdateMetadata(r.Context(), chi.URLParam(r, "pageID"), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) pageContent(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Pages.Content(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) updatePageContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.PageContentUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid page content body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	payload, err := h.services.Pages.UpdateContent(r.Context(), chi.URLParam(r, "pageID"), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) pageCustomCode(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.Pages.CustomCode(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}

func (h *Handler) upsertPageCustomCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.CustomCodeUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid custom code body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	payload, err := h.services.Pages.UpsertCustomCode(r.Context(), chi.URLParam(r, "pageID"), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, payload)
}
