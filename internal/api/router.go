package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/folioforge/engine/internal/api/handlers"
	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/models"
)

type Dependencies struct {
	HMACSecret []byte

	RateLimitRPS   float64
	RateLimitBurst int

	AuthHandler       *handlers.AuthHandler
	ProfileHandler    *handlers.ProfileHandler
	PortfolioHandler  *handlers.PortfolioHandler
	SectionHandler    *handlers.SectionHandler
	ThemeHandler      *handlers.ThemeHandler
	AIHandler         *handlers.AIHandler
	PublicHandler     *handlers.PublicHandler
	ExperienceHandler *handlers.OwnedHandler[models.Experience, types.ExperienceRequest]
	EducationHandler  *handlers.OwnedHandler[models.Education, types.EducationRequest]
	ProjectHandler    *handlers.OwnedHandler[models.Project, types.ProjectRequest]
	SkillHandler      *handlers.OwnedHandler[models.Skill, types.SkillRequest]
	SocialLinkHandler *handlers.OwnedHandler[models.SocialLink, types.SocialLinkRequest]
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS)
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Server-rendered public page.
	r.Get("/p/{slug}", dep.PublicHandler.Page)

	r.Route("/api/v1", func(api chi.Router) {
		// Auth routes (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Post("/logout", dep.AuthHandler.Logout)
		})

		// Public combined payload.
		api.Get("/portfolios/{slug}", dep.PortfolioHandler.GetPublic)

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Auth(dep.HMACSecret))

			protected.Route("/profile", func(pr chi.Router) {
				pr.Get("/", dep.ProfileHandler.Get)
				pr.Put("/", dep.ProfileHandler.Update)
				pr.Post("/avatar", dep.ProfileHandler.UploadAvatar)
			})

			protected.Route("/experiences", func(er chi.Router) {
				er.Get("/", dep.ExperienceHandler.List)
				er.Post("/", dep.ExperienceHandler.Create)
				er.Put("/{id}", dep.ExperienceHandler.Update)
				er.Delete("/{id}", dep.ExperienceHandler.Delete)
			})

			protected.Route("/educations", func(er chi.Router) {
				er.Get("/", dep.EducationHandler.List)
				er.Post("/", dep.EducationHandler.Create)
				er.Put("/{id}", dep.EducationHandler.Update)
				er.Delete("/{id}", dep.EducationHandler.Delete)
			})

			protected.Route("/projects", func(pr chi.Router) {
				pr.Get("/", dep.ProjectHandler.List)
				pr.Post("/", dep.ProjectHandler.Create)
				pr.Put("/{id}", dep.ProjectHandler.Update)
				pr.Delete("/{id}", dep.ProjectHandler.Delete)
			})

			protected.Route("/skills", func(sr chi.Router) {
				sr.Get("/", dep.SkillHandler.List)
				sr.Post("/", dep.SkillHandler.Create)
				sr.Put("/{id}", dep.SkillHandler.Update)
				sr.Delete("/{id}", dep.SkillHandler.Delete)
			})

			protected.Route("/social-links", func(sr chi.Router) {
				sr.Get("/", dep.SocialLinkHandler.List)
				sr.Post("/", dep.SocialLinkHandler.Create)
				sr.Put("/{id}", dep.SocialLinkHandler.Update)
				sr.Delete("/{id}", dep.SocialLinkHandler.Delete)
			})

			protected.Route("/portfolio", func(pr chi.Router) {
				pr.Get("/", dep.PortfolioHandler.GetMine)
				pr.Put("/", dep.PortfolioHandler.Update)
			})

			// Section, theme, and AI routes carry the per-user limiter on
			// top of auth. One limiter instance, so the buckets are shared
			// across these routes. Theme preview is deliberately unlimited.
			rl := middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst)

			protected.With(rl).Route("/sections", func(sr chi.Router) {
				sr.Get("/", dep.SectionHandler.List)
				sr.Post("/", dep.SectionHandler.Create)
				sr.Put("/reorder", dep.SectionHandler.Reorder)
				sr.Put("/{id}", dep.SectionHandler.Update)
				sr.Delete("/{id}", dep.SectionHandler.Delete)
			})

			protected.Route("/theme", func(tr chi.Router) {
				tr.With(rl).Get("/", dep.ThemeHandler.Get)
				tr.With(rl).Put("/", dep.ThemeHandler.Set)
				tr.With(rl).Post("/background", dep.ThemeHandler.UploadBackground)
				tr.Post("/preview", dep.ThemeHandler.Preview)
			})

			protected.With(rl).Route("/ai", func(ar chi.Router) {
				ar.Post("/enhance-content", dep.AIHandler.EnhanceContent)
				ar.Post("/generate-bio", dep.AIHandler.GenerateBio)
				ar.Post("/recommend-skills", dep.AIHandler.RecommendSkills)
			})
		})
	})

	return r
}
