package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
	"github.com/folioforge/engine/internal/sanitize"
	"github.com/folioforge/engine/internal/storage"
	appErr "github.com/folioforge/engine/pkg/errors"
)

type ThemeInput struct {
	Layout          string `json:"layout" validate:"required,oneof=grid timeline cards"`
	PrimaryColor    string `json:"primary_color" validate:"required"`
	BackgroundColor string `json:"background_color" validate:"required"`
	TextColor       string `json:"text_color" validate:"required"`
	FontFamily      string `json:"font_family" validate:"required"`
	BackgroundImage string `json:"background_image"`
	CustomCSS       string `json:"custom_css"`
}

// ThemeWithSlug is the GET payload: the theme plus the portfolio slug so the
// editor can link to the public page.
type ThemeWithSlug struct {
	models.PortfolioTheme
	Slug string `json:"slug"`
}

type ThemeService interface {
	Get(ctx context.Context, userID uuid.UUID) (*ThemeWithSlug, error)
	Set(ctx context.Context, userID uuid.UUID, input *ThemeInput) (*models.PortfolioTheme, error)
	SetBackground(ctx context.Context, userID uuid.UUID, filename, contentType string, data io.Reader) (string, error)
}

type themeService struct {
	portfolioRepo repository.PortfolioRepository
	themeRepo     repository.ThemeRepository
	store         storage.Storage
}

var _ ThemeService = (*themeService)(nil)

func NewThemeService(portfolioRepo repository.PortfolioRepository, themeRepo repository.ThemeRepository, store storage.Storage) ThemeService {
	return &themeService{portfolioRepo: portfolioRepo, themeRepo: themeRepo, store: store}
}

func (s *themeService) Get(ctx context.Context, userID uuid.UUID) (*ThemeWithSlug, error) {
	var p models.Portfolio
	if err := s.portfolioRepo.GetByUser(ctx, userID, &p); err != nil {
		return nil, err
	}

	var t models.PortfolioTheme
	if err := s.themeRepo.GetByPortfolio(ctx, p.ID, &t); err != nil {
		if !appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, err
		}
		// Defaults from the model until the owner saves a theme.
		t = models.PortfolioTheme{
			PortfolioID:     p.ID,
			Layout:          models.LayoutGrid,
			PrimaryColor:    "#2563eb",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			FontFamily:      "Inter",
		}
	}
	return &ThemeWithSlug{PortfolioTheme: t, Slug: p.Slug}, nil
}

// CheckThemeInput validates colors and sanitizes the custom CSS in place.
// Exposed so the preview endpoint applies the same rules without persisting.
func CheckThemeInput(input *ThemeInput) error {
	for field, c := range map[string]string{
		"primary_color":    input.PrimaryColor,
		"background_color": input.BackgroundColor,
		"text_color":       input.TextColor,
	} {
		if !sanitize.HexColor(c) {
			return appErr.New(appErr.CodeInvalid, "colors must be 3- or 6-digit hex values").
				WithMeta("field", field)
		}
	}
	input.CustomCSS = sanitize.CSS(input.CustomCSS)
	return nil
}

func (s *themeService) Set(ctx context.Context, userID uuid.UUID, input *ThemeInput) (*models.PortfolioTheme, error) {
	var p models.Portfolio
	if err := s.portfolioRepo.GetByUser(ctx, userID, &p); err != nil {
		return nil, err
	}
	if err := CheckThemeInput(input); err != nil {
		return nil, err
	}

	var t models.PortfolioTheme
	if err := s.themeRepo.GetByPortfolio(ctx, p.ID, &t); err != nil {
		if !appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, err
		}
		t = models.PortfolioTheme{PortfolioID: p.ID}
	}

	t.Layout = input.Layout
	t.PrimaryColor = input.PrimaryColor
	t.BackgroundColor = input.BackgroundColor
	t.TextColor = input.TextColor
	t.FontFamily = input.FontFamily
	t.BackgroundImage = input.BackgroundImage
	t.CustomCSS = input.CustomCSS

	if err := s.themeRepo.Save(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *themeService) SetBackground(ctx context.Context, userID uuid.UUID, filename, contentType string, data io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", appErr.New(appErr.CodeInvalid, "background must be an image")
	}

	var p models.Portfolio
	if err := s.portfolioRepo.GetByUser(ctx, userID, &p); err != nil {
		return "", err
	}

	url, err := s.store.Upload(ctx, filename, contentType, data)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "store background image failed")
	}

	var t models.PortfolioTheme
	if err := s.themeRepo.GetByPortfolio(ctx, p.ID, &t); err != nil {
		if !appErr.IsCode(err, appErr.CodeNotFound) {
			return "", err
		}
		t = models.PortfolioTheme{PortfolioID: p.ID, Layout: models.LayoutGrid, PrimaryColor: "#2563eb", BackgroundColor: "#ffffff", TextColor: "#111827", FontFamily: "Inter"}
	}
	t.BackgroundImage = url
	if err := s.themeRepo.Save(ctx, &t); err != nil {
		return "", err
	}
	return url, nil
}

// ThemeCSS turns a theme into the stylesheet served by the preview endpoint
// and inlined on the public page. The custom CSS is appended last so owner
// rules win.
func ThemeCSS(t *models.PortfolioTheme) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --primary: %s;\n", t.PrimaryColor)
	fmt.Fprintf(&b, "  --background: %s;\n", t.BackgroundColor)
	fmt.Fprintf(&b, "  --text: %s;\n", t.TextColor)
	fmt.Fprintf(&b, "  --font-family: %q;\n", t.FontFamily)
	b.WriteString("}\n")
	fmt.Fprintf(&b, "body { background: var(--background); color: var(--text); font-family: var(--font-family), sans-serif; }\n")
	if t.BackgroundImage != "" {
		fmt.Fprintf(&b, "body { background-image: url(%q); background-size: cover; }\n", t.BackgroundImage)
	}
	if t.CustomCSS != "" {
		b.WriteString(t.CustomCSS)
		b.WriteString("\n")
	}
	return b.String()
}
