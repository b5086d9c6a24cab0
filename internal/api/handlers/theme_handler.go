package handlers

import (
	"net/http"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/services"
)

const maxBackgroundBytes = 5 << 20

type ThemeHandler struct {
	themes services.ThemeService
}

func NewThemeHandler(themes services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.themes.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: t})
}

func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req services.ThemeInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.themes.Set(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: t})
}

// Preview renders the stylesheet for a theme payload without persisting it.
func (h *ThemeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req services.ThemeInput
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := services.CheckThemeInput(&req); err != nil {
		writeError(w, r, err)
		return
	}

	css := services.ThemeCSS(&models.PortfolioTheme{
		Layout:          req.Layout,
		PrimaryColor:    req.PrimaryColor,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		FontFamily:      req.FontFamily,
		BackgroundImage: req.BackgroundImage,
		CustomCSS:       req.CustomCSS,
	})

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(css))
}

// UploadBackground stores a background image through the configured storage
// backend and saves its URL on the theme.
func (h *ThemeHandler) UploadBackground(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBackgroundBytes+4096)
	if err := r.ParseMultipartForm(maxBackgroundBytes); err != nil {
		writeInvalid(w, "background must be at most 5 MiB")
		return
	}

	file, header, err := r.FormFile("background")
	if err != nil {
		writeInvalid(w, "missing background file")
		return
	}
	defer file.Close()

	url, err := h.themes.SetBackground(r.Context(), middleware.GetUserID(r.Context()), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"background_image": url}})
}
