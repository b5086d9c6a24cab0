package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/folioforge/engine/internal/content"
	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
	"github.com/folioforge/engine/internal/sanitize"
	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/folioforge/engine/pkg/logger"
)

// PublicSection is a custom section as exposed on the public page: content is
// already validated against its type tag, or marked invalid. Invalid sections
// keep their title and render a placeholder.
type PublicSection struct {
	ID      uuid.UUID     `json:"id"`
	Title   string        `json:"title"`
	Type    content.Type  `json:"type"`
	Content content.Value `json:"content,omitempty"`
	Invalid bool          `json:"invalid,omitempty"`
}

// PublicProfile is the owner's profile as shown to anonymous visitors: no
// email, no phone unless the owner filled it for display.
type PublicProfile struct {
	Name     string `json:"name"`
	Headline string `json:"headline,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// PublicPortfolio is the combined payload for one published portfolio.
type PublicPortfolio struct {
	Slug           string                 `json:"slug"`
	SEOTitle       string                 `json:"seo_title,omitempty"`
	SEODescription string                 `json:"seo_description,omitempty"`
	ViewCount      int64                  `json:"view_count"`
	User           PublicProfile          `json:"user"`
	Theme          *models.PortfolioTheme `json:"theme,omitempty"`
	Experiences    []models.Experience    `json:"experiences"`
	Educations     []models.Education     `json:"educations"`
	Projects       []models.Project       `json:"projects"`
	Skills         []models.Skill         `json:"skills"`
	SocialLinks    []models.SocialLink    `json:"social_links"`
	Sections       []PublicSection        `json:"sections"`
}

type UpdatePortfolioInput struct {
	Slug           *string
	IsPublished    *bool
	SEOTitle       *string
	SEODescription *string
}

type PortfolioService interface {
	// GetOrCreate returns the caller's portfolio, creating a draft one with a
	// derived slug on first access.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdatePortfolioInput) (*models.Portfolio, error)
	// PublicBySlug assembles the combined public payload. Missing and
	// unpublished portfolios are indistinguishable (not found).
	PublicBySlug(ctx context.Context, slug string) (*PublicPortfolio, error)
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	userRepo      repository.UserRepository
	themeRepo     repository.ThemeRepository
	sectionRepo   repository.SectionRepository
	experiences   repository.OwnedRepository[models.Experience]
	educations    repository.OwnedRepository[models.Education]
	projects      repository.OwnedRepository[models.Project]
	skills        repository.OwnedRepository[models.Skill]
	socials       repository.OwnedRepository[models.SocialLink]

	// Public payloads are cached per slug for a short TTL; edits may be
	// stale on the public page for at most publicCacheTTL.
	cache *gocache.Cache
}

const publicCacheTTL = 5 * time.Minute

var _ PortfolioService = (*portfolioService)(nil)

type PortfolioServiceDeps struct {
	Portfolios  repository.PortfolioRepository
	Users       repository.UserRepository
	Themes      repository.ThemeRepository
	Sections    repository.SectionRepository
	Experiences repository.OwnedRepository[models.Experience]
	Educations  repository.OwnedRepository[models.Education]
	Projects    repository.OwnedRepository[models.Project]
	Skills      repository.OwnedRepository[models.Skill]
	Socials     repository.OwnedRepository[models.SocialLink]
}

func NewPortfolioService(deps PortfolioServiceDeps) PortfolioService {
	return &portfolioService{
		portfolioRepo: deps.Portfolios,
		userRepo:      deps.Users,
		themeRepo:     deps.Themes,
		sectionRepo:   deps.Sections,
		experiences:   deps.Experiences,
		educations:    deps.Educations,
		projects:      deps.Projects,
		skills:        deps.Skills,
		socials:       deps.Socials,
		cache:         gocache.New(publicCacheTTL, 10*time.Minute),
	}
}

func (s *portfolioService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.portfolioRepo.GetByUser(ctx, userID, &p)
	if err == nil {
		return &p, nil
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	p = models.Portfolio{
		UserID: userID,
		Slug:   deriveSlug(userID),
	}
	if err := s.portfolioRepo.Create(ctx, &p); err != nil {
		return nil, err
	}
	logger.L().Info("portfolio created", zap.String("portfolio_id", p.ID.String()), zap.String("user_id", userID.String()))
	return &p, nil
}

// deriveSlug gives new portfolios a unique, URL-safe starting slug the owner
// can change later.
func deriveSlug(userID uuid.UUID) string {
	return fmt.Sprintf("portfolio-%s", userID.String()[:8])
}

func (s *portfolioService) Update(ctx context.Context, userID uuid.UUID, input *UpdatePortfolioInput) (*models.Portfolio, error) {
	p, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldSlug := p.Slug
	if input.Slug != nil {
		if !sanitize.Slug(*input.Slug) {
			return nil, appErr.New(appErr.CodeInvalid, "slug must be 3-64 lowercase letters, digits, or hyphens")
		}
		p.Slug = *input.Slug
	}
	if input.IsPublished != nil {
		p.IsPublished = *input.IsPublished
	}
	if input.SEOTitle != nil {
		p.SEOTitle = *input.SEOTitle
	}
	if input.SEODescription != nil {
		p.SEODescription = *input.SEODescription
	}

	if err := s.portfolioRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.cache.Delete(oldSlug)
	s.cache.Delete(p.Slug)
	return p, nil
}

func (s *portfolioService) PublicBySlug(ctx context.Context, slug string) (*PublicPortfolio, error) {
	if cached, ok := s.cache.Get(slug); ok {
		pp := cached.(*PublicPortfolio)
		// The counter still moves for cached hits.
		var p models.Portfolio
		if err := s.portfolioRepo.GetPublishedBySlug(ctx, slug, &p); err != nil {
			return nil, err
		}
		_ = s.portfolioRepo.IncrementViews(ctx, p.ID)
		return pp, nil
	}

	var p models.Portfolio
	if err := s.portfolioRepo.GetPublishedBySlug(ctx, slug, &p); err != nil {
		return nil, err
	}

	var u models.User
	if err := s.userRepo.GetByID(ctx, p.UserID, &u); err != nil {
		return nil, err
	}

	pp := &PublicPortfolio{
		Slug:           p.Slug,
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
		ViewCount:      p.ViewCount,
		User: PublicProfile{
			Name:     u.Name,
			Headline: u.Headline,
			Bio:      u.Bio,
			Location: u.Location,
			Website:  u.Website,
			Avatar:   u.Avatar,
		},
	}

	var theme models.PortfolioTheme
	if err := s.themeRepo.GetByPortfolio(ctx, p.ID, &theme); err == nil {
		pp.Theme = &theme
	} else if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	var err error
	if pp.Experiences, err = s.experiences.ListByUser(ctx, p.UserID); err != nil {
		return nil, err
	}
	if pp.Educations, err = s.educations.ListByUser(ctx, p.UserID); err != nil {
		return nil, err
	}
	if pp.Projects, err = s.projects.ListByUser(ctx, p.UserID); err != nil {
		return nil, err
	}
	if pp.Skills, err = s.skills.ListByUser(ctx, p.UserID); err != nil {
		return nil, err
	}
	if pp.SocialLinks, err = s.socials.ListByUser(ctx, p.UserID); err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListPublished(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	pp.Sections = make([]PublicSection, 0, len(sections))
	for _, sec := range sections {
		ps := PublicSection{ID: sec.ID, Title: sec.Title, Type: sec.Type}
		v, verr := content.Validate(sec.Type, sec.Content)
		if verr != nil {
			// Logged once here; the page shows a placeholder with the title.
			logger.L().Warn("stored section content failed validation",
				zap.String("section_id", sec.ID.String()),
				zap.String("type", string(sec.Type)),
			)
			ps.Invalid = true
		} else {
			ps.Content = v
		}
		pp.Sections = append(pp.Sections, ps)
	}

	s.cache.Set(slug, pp, gocache.DefaultExpiration)
	_ = s.portfolioRepo.IncrementViews(ctx, p.ID)
	return pp, nil
}
