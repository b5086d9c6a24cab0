package repository

import (
	"context"

	"github.com/google/uuid"
	appErr "github.com/folioforge/engine/pkg/errors"
	"gorm.io/gorm"
)

// OwnedRepository extends BaseRepository for entities carrying a user_id
// column: the five profile list types (Experience, Education, Project, Skill,
// SocialLink). Every read and write is scoped to the owning user, so "not
// yours" and "does not exist" are indistinguishable to callers.
type OwnedRepository[T any] interface {
	BaseRepository[T]
	ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error)
	GetOwned(ctx context.Context, id, userID uuid.UUID, dest *T) error
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

type ownedRepository[T any] struct {
	BaseRepository[T]
	db      *gorm.DB
	orderBy string
}

// NewOwnedRepository builds an owned-entity repository. orderBy is the list
// ordering clause; ordered entities use
// "display_order ASC, created_at ASC, id ASC" so ties on display_order stay
// deterministic.
func NewOwnedRepository[T any](db *gorm.DB, orderBy string) OwnedRepository[T] {
	if orderBy == "" {
		orderBy = "created_at ASC, id ASC"
	}
	return &ownedRepository[T]{BaseRepository: NewBaseRepository[T](db), db: db, orderBy: orderBy}
}

func (r *ownedRepository[T]) ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order(r.orderBy).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list entities by user failed")
	}
	return out, nil
}

func (r *ownedRepository[T]) GetOwned(ctx context.Context, id, userID uuid.UUID, dest *T) error {
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get owned entity failed")
	}
	return nil
}

func (r *ownedRepository[T]) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	var t T
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&t)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete owned entity failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	return nil
}
