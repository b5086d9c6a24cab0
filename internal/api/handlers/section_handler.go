package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/repository"
	"github.com/folioforge/engine/internal/services"
)

type SectionHandler struct {
	sections services.SectionService
}

func NewSectionHandler(sections services.SectionService) *SectionHandler {
	return &SectionHandler{sections: sections}
}

func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sections.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.SectionInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sec, err := h.sections.Create(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: sec})
}

func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, "invalid id")
		return
	}

	var req services.SectionInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sec, err := h.sections.Update(r.Context(), middleware.GetUserID(r.Context()), id, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: sec})
}

func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, "invalid id")
		return
	}
	if err := h.sections.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder applies a batch of {id, order} pairs atomically; a single foreign
// id rejects the whole batch.
func (h *SectionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sections []repository.SectionOrder `json:"sections" validate:"required,min=1,dive"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.sections.Reorder(r.Context(), middleware.GetUserID(r.Context()), req.Sections); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
