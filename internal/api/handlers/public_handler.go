package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folioforge/engine/internal/content"
	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/services"
	appErr "github.com/folioforge/engine/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// PublicHandler serves the server-rendered portfolio page.
type PublicHandler struct {
	portfolios services.PortfolioService
	tmpl       *template.Template
}

func NewPublicHandler(portfolios services.PortfolioService) *PublicHandler {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"sectionHTML": sectionHTML,
		"themeCSS":    themeCSS,
	}).ParseFS(templateFS, "templates/*.html"))
	return &PublicHandler{portfolios: portfolios, tmpl: tmpl}
}

// sectionHTML dispatches a public section to the content renderer; sections
// whose stored content failed validation get the placeholder, title intact.
func sectionHTML(s services.PublicSection) template.HTML {
	if s.Invalid || s.Content == nil {
		return content.Placeholder()
	}
	return content.Render(s.Content)
}

func themeCSS(t *models.PortfolioTheme) template.CSS {
	if t == nil {
		t = &models.PortfolioTheme{
			Layout:          models.LayoutGrid,
			PrimaryColor:    "#2563eb",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			FontFamily:      "Inter",
		}
	}
	return template.CSS(services.ThemeCSS(t))
}

func (h *PublicHandler) Page(w http.ResponseWriter, r *http.Request) {
	pp, err := h.portfolios.PublicBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			http.NotFound(w, r)
			return
		}
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "portfolio.html", pp); err != nil {
		writeError(w, r, appErr.Wrap(err, appErr.CodeInternal, "render page failed"))
	}
}
