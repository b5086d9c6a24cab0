package handlers

import (
	"net/http"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/services"
)

type AIHandler struct {
	ai services.AIService
}

func NewAIHandler(ai services.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

func (h *AIHandler) EnhanceContent(w http.ResponseWriter, r *http.Request) {
	var req services.EnhanceInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.ai.EnhanceContent(r.Context(), middleware.GetUserID(r.Context()).String(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"text": out}})
}

func (h *AIHandler) GenerateBio(w http.ResponseWriter, r *http.Request) {
	var req services.BioInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.ai.GenerateBio(r.Context(), middleware.GetUserID(r.Context()).String(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"bio": out}})
}

func (h *AIHandler) RecommendSkills(w http.ResponseWriter, r *http.Request) {
	var req services.RecommendSkillsInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	skills, err := h.ai.RecommendSkills(r.Context(), middleware.GetUserID(r.Context()).String(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]any{"skills": skills}})
}
