package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/folioforge/engine/internal/api"
	"github.com/folioforge/engine/internal/api/handlers"
	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
	"github.com/folioforge/engine/internal/services"
	"github.com/folioforge/engine/internal/storage"
	"github.com/folioforge/engine/pkg/config"
	"github.com/folioforge/engine/pkg/database"
	"github.com/folioforge/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting FolioForge Engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}

	// Process-wide handles: created once, reused by every request.
	geminiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}
	defer geminiClient.Close()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	experienceRepo := repository.NewOwnedRepository[models.Experience](db, "start_date DESC, id ASC")
	educationRepo := repository.NewOwnedRepository[models.Education](db, "start_year DESC, id ASC")
	projectRepo := repository.NewOwnedRepository[models.Project](db, "display_order ASC, created_at ASC, id ASC")
	skillRepo := repository.NewOwnedRepository[models.Skill](db, "display_order ASC, created_at ASC, id ASC")
	socialRepo := repository.NewOwnedRepository[models.SocialLink](db, "")

	// Services
	authService := services.NewAuthService(userRepo, jwtSecret)
	profileService := services.NewProfileService(userRepo)
	portfolioService := services.NewPortfolioService(services.PortfolioServiceDeps{
		Portfolios:  portfolioRepo,
		Users:       userRepo,
		Themes:      themeRepo,
		Sections:    sectionRepo,
		Experiences: experienceRepo,
		Educations:  educationRepo,
		Projects:    projectRepo,
		Skills:      skillRepo,
		Socials:     socialRepo,
	})
	sectionService := services.NewSectionService(portfolioRepo, sectionRepo)
	themeService := services.NewThemeService(portfolioRepo, themeRepo, store)
	aiService := services.NewAIService(geminiClient, cfg.AIHourlyCap)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:        jwtSecret,
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
		AuthHandler:       handlers.NewAuthHandler(authService),
		ProfileHandler:    handlers.NewProfileHandler(profileService),
		PortfolioHandler:  handlers.NewPortfolioHandler(portfolioService),
		SectionHandler:    handlers.NewSectionHandler(sectionService),
		ThemeHandler:      handlers.NewThemeHandler(themeService),
		AIHandler:         handlers.NewAIHandler(aiService),
		PublicHandler:     handlers.NewPublicHandler(portfolioService),
		ExperienceHandler: handlers.NewExperienceHandler(experienceRepo),
		EducationHandler:  handlers.NewEducationHandler(educationRepo),
		ProjectHandler:    handlers.NewProjectHandler(projectRepo),
		SkillHandler:      handlers.NewSkillHandler(skillRepo),
		SocialLinkHandler: handlers.NewSocialLinkHandler(socialRepo),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
