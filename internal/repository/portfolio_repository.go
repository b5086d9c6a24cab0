package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/folioforge/engine/internal/models"
	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioRepository interface {
	BaseRepository[models.Portfolio]
	GetByUser(ctx context.Context, userID uuid.UUID, dest *models.Portfolio) error
	GetPublishedBySlug(ctx context.Context, slug string, dest *models.Portfolio) error
	IncrementViews(ctx context.Context, portfolioID uuid.UUID) error
	Save(ctx context.Context, p *models.Portfolio) error
}

type portfolioRepository struct {
	BaseRepository[models.Portfolio]
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{BaseRepository: NewBaseRepository[models.Portfolio](db), db: db}
}

func (r *portfolioRepository) GetByUser(ctx context.Context, userID uuid.UUID, dest *models.Portfolio) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "portfolio not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get portfolio by user failed")
	}
	return nil
}

// GetPublishedBySlug only returns published portfolios; an existing but
// unpublished slug is reported as not found.
func (r *portfolioRepository) GetPublishedBySlug(ctx context.Context, slug string, dest *models.Portfolio) error {
	err := r.db.WithContext(ctx).Where("slug = ? AND is_published = true", slug).First(dest).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "portfolio not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get portfolio by slug failed")
	}
	return nil
}

// IncrementViews bumps the counter atomically in SQL; concurrent public
// fetches never lose counts to read-modify-write races.
func (r *portfolioRepository) IncrementViews(ctx context.Context, portfolioID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&models.Portfolio{}).
		Where("id = ?", portfolioID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "increment views failed")
	}
	return nil
}

// Save writes the portfolio and maps a unique-constraint violation on the
// slug to a conflict error.
func (r *portfolioRepository) Save(ctx context.Context, p *models.Portfolio) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		if isUniqueViolation(err) {
			return appErr.New(appErr.CodeConflict, "slug already in use")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "save portfolio failed")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx wraps postgres error 23505 without a stable sentinel.
	return strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key")
}
