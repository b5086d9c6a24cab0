package repository

import (
	"context"

	"github.com/folioforge/engine/internal/models"
	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionOrder is one {id, order} pair of a reorder batch.
type SectionOrder struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Order int       `json:"order"`
}

type SectionRepository interface {
	BaseRepository[models.CustomSection]
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.CustomSection, error)
	ListPublished(ctx context.Context, portfolioID uuid.UUID) ([]models.CustomSection, error)
	GetOwned(ctx context.Context, id, portfolioID uuid.UUID, dest *models.CustomSection) error
	DeleteOwned(ctx context.Context, id, portfolioID uuid.UUID) error
	Reorder(ctx context.Context, portfolioID uuid.UUID, batch []SectionOrder) error
}

type sectionRepository struct {
	BaseRepository[models.CustomSection]
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{BaseRepository: NewBaseRepository[models.CustomSection](db), db: db}
}

// Display ordering: equal display_order values fall back to creation time and
// then id, so the sequence is deterministic.
const sectionOrderClause = "display_order ASC, created_at ASC, id ASC"

func (r *sectionRepository) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.CustomSection, error) {
	var out []models.CustomSection
	if err := r.db.WithContext(ctx).Where("portfolio_id = ?", portfolioID).Order(sectionOrderClause).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list sections failed")
	}
	return out, nil
}

func (r *sectionRepository) ListPublished(ctx context.Context, portfolioID uuid.UUID) ([]models.CustomSection, error) {
	var out []models.CustomSection
	if err := r.db.WithContext(ctx).Where("portfolio_id = ? AND is_published = true", portfolioID).Order(sectionOrderClause).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list published sections failed")
	}
	return out, nil
}

func (r *sectionRepository) GetOwned(ctx context.Context, id, portfolioID uuid.UUID, dest *models.CustomSection) error {
	if err := r.db.WithContext(ctx).Where("id = ? AND portfolio_id = ?", id, portfolioID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "section not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get section failed")
	}
	return nil
}

func (r *sectionRepository) DeleteOwned(ctx context.Context, id, portfolioID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND portfolio_id = ?", id, portfolioID).Delete(&models.CustomSection{})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete section failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "section not found")
	}
	return nil
}

// Reorder applies the whole batch in one transaction. If any id does not
// belong to the portfolio the batch is rejected and no row changes.
func (r *sectionRepository) Reorder(ctx context.Context, portfolioID uuid.UUID, batch []SectionOrder) error {
	if len(batch) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(batch))
	for _, so := range batch {
		ids = append(ids, so.ID)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&models.CustomSection{}).
			Where("portfolio_id = ? AND id IN ?", portfolioID, ids).
			Count(&owned).Error; err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "count sections failed")
		}
		if owned != int64(len(ids)) {
			return appErr.New(appErr.CodeInvalid, "batch contains sections outside this portfolio")
		}
		for _, so := range batch {
			res := tx.Model(&models.CustomSection{}).
				Where("id = ? AND portfolio_id = ?", so.ID, portfolioID).
				UpdateColumn("display_order", so.Order)
			if res.Error != nil {
				return appErr.Wrap(res.Error, appErr.CodeInternal, "update section order failed")
			}
		}
		return nil
	})
	return err
}
