package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/folioforge/engine/internal/content"
	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/folioforge/engine/pkg/logger"
)

type SectionInput struct {
	Title       string          `json:"title" validate:"required"`
	Type        content.Type    `json:"type" validate:"required"`
	Content     json.RawMessage `json:"content" validate:"required"`
	Order       *int            `json:"order"`
	IsPublished *bool           `json:"is_published"`
}

type SectionService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CustomSection, error)
	Create(ctx context.Context, userID uuid.UUID, input *SectionInput) (*models.CustomSection, error)
	// Update replaces the section's content wholesale; there is no partial
	// patch of stored content.
	Update(ctx context.Context, userID, sectionID uuid.UUID, input *SectionInput) (*models.CustomSection, error)
	Delete(ctx context.Context, userID, sectionID uuid.UUID) error
	Reorder(ctx context.Context, userID uuid.UUID, batch []repository.SectionOrder) error
}

type sectionService struct {
	portfolioRepo repository.PortfolioRepository
	sectionRepo   repository.SectionRepository
}

var _ SectionService = (*sectionService)(nil)

func NewSectionService(portfolioRepo repository.PortfolioRepository, sectionRepo repository.SectionRepository) SectionService {
	return &sectionService{portfolioRepo: portfolioRepo, sectionRepo: sectionRepo}
}

// portfolioOf resolves the caller's portfolio; users without one get not
// found for every section operation.
func (s *sectionService) portfolioOf(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.portfolioRepo.GetByUser(ctx, userID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *sectionService) List(ctx context.Context, userID uuid.UUID) ([]models.CustomSection, error) {
	p, err := s.portfolioOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.sectionRepo.ListByPortfolio(ctx, p.ID)
}

// checkContent validates the declared type and the content shape; the
// rejection carries a schema-detail payload for the 400 response.
func checkContent(input *SectionInput) error {
	if !input.Type.Valid() {
		return appErr.New(appErr.CodeInvalid, "unknown section type").
			WithMeta("type", string(input.Type))
	}
	if _, err := content.Validate(input.Type, input.Content); err != nil {
		return appErr.New(appErr.CodeInvalid, "content does not match the declared section type").
			WithMeta("type", string(input.Type))
	}
	return nil
}

func (s *sectionService) Create(ctx context.Context, userID uuid.UUID, input *SectionInput) (*models.CustomSection, error) {
	p, err := s.portfolioOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := checkContent(input); err != nil {
		return nil, err
	}

	sec := &models.CustomSection{
		PortfolioID: p.ID,
		Title:       input.Title,
		Type:        input.Type,
		Content:     datatypes.JSON(input.Content),
		IsPublished: true,
	}
	if input.Order != nil {
		sec.Order = *input.Order
	}
	if input.IsPublished != nil {
		sec.IsPublished = *input.IsPublished
	}

	if err := s.sectionRepo.Create(ctx, sec); err != nil {
		return nil, err
	}
	logger.L().Info("section created",
		zap.String("section_id", sec.ID.String()),
		zap.String("portfolio_id", p.ID.String()),
		zap.String("type", string(sec.Type)),
	)
	return sec, nil
}

func (s *sectionService) Update(ctx context.Context, userID, sectionID uuid.UUID, input *SectionInput) (*models.CustomSection, error) {
	p, err := s.portfolioOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sec models.CustomSection
	if err := s.sectionRepo.GetOwned(ctx, sectionID, p.ID, &sec); err != nil {
		return nil, err
	}
	if err := checkContent(input); err != nil {
		return nil, err
	}

	sec.Title = input.Title
	sec.Type = input.Type
	sec.Content = datatypes.JSON(input.Content)
	if input.Order != nil {
		sec.Order = *input.Order
	}
	if input.IsPublished != nil {
		sec.IsPublished = *input.IsPublished
	}

	if err := s.sectionRepo.Update(ctx, &sec); err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *sectionService) Delete(ctx context.Context, userID, sectionID uuid.UUID) error {
	p, err := s.portfolioOf(ctx, userID)
	if err != nil {
		return err
	}
	return s.sectionRepo.DeleteOwned(ctx, sectionID, p.ID)
}

func (s *sectionService) Reorder(ctx context.Context, userID uuid.UUID, batch []repository.SectionOrder) error {
	p, err := s.portfolioOf(ctx, userID)
	if err != nil {
		return err
	}
	return s.sectionRepo.Reorder(ctx, p.ID, batch)
}
