package repository

import (
	"context"

	"github.com/folioforge/engine/internal/models"
	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThemeRepository interface {
	GetByPortfolio(ctx context.Context, portfolioID uuid.UUID, dest *models.PortfolioTheme) error
	Save(ctx context.Context, t *models.PortfolioTheme) error
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) GetByPortfolio(ctx context.Context, portfolioID uuid.UUID, dest *models.PortfolioTheme) error {
	if err := r.db.WithContext(ctx).Where("portfolio_id = ?", portfolioID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "theme not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get theme failed")
	}
	return nil
}

func (r *themeRepository) Save(ctx context.Context, t *models.PortfolioTheme) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "save theme failed")
	}
	return nil
}
