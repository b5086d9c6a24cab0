package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/repository"
)

// OwnedHandler serves the CRUD surface shared by the five profile list
// entities. apply copies a validated request onto the model; it also stamps
// the owner so create and update go through the same path.
type OwnedHandler[T any, R any] struct {
	repo  repository.OwnedRepository[T]
	apply func(userID uuid.UUID, req *R, dst *T)
}

func NewOwnedHandler[T any, R any](repo repository.OwnedRepository[T], apply func(uuid.UUID, *R, *T)) *OwnedHandler[T, R] {
	return &OwnedHandler[T, R]{repo: repo, apply: apply}
}

func (h *OwnedHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	items, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    items[start:end],
		Meta:    &types.Meta{Page: page, PageSize: size, Total: int64(len(items))},
	})
}

func (h *OwnedHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req R
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var m T
	h.apply(middleware.GetUserID(r.Context()), &req, &m)
	if err := h.repo.Create(r.Context(), &m); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: m})
}

func (h *OwnedHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, "invalid id")
		return
	}
	userID := middleware.GetUserID(r.Context())

	var m T
	if err := h.repo.GetOwned(r.Context(), id, userID, &m); err != nil {
		writeError(w, r, err)
		return
	}

	var req R
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.apply(userID, &req, &m)
	if err := h.repo.Update(r.Context(), &m); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: m})
}

func (h *OwnedHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeInvalid(w, "invalid id")
		return
	}
	if err := h.repo.DeleteOwned(r.Context(), id, middleware.GetUserID(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
