package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/services"
)

type PortfolioHandler struct {
	portfolios services.PortfolioService
}

func NewPortfolioHandler(portfolios services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

func (h *PortfolioHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	p, err := h.portfolios.GetOrCreate(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req types.PortfolioUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.portfolios.Update(r.Context(), middleware.GetUserID(r.Context()), &services.UpdatePortfolioInput{
		Slug:           req.Slug,
		IsPublished:    req.IsPublished,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

// GetPublic serves the combined public payload by slug, no auth required.
func (h *PortfolioHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	pp, err := h.portfolios.PublicBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: pp})
}
