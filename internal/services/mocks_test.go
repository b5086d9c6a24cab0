package services

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
	"github.com/folioforge/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by services)
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

// Mock implementations

type mockPortfolioRepo struct {
	mock.Mock
}

func (m *mockPortfolioRepo) Create(ctx context.Context, obj *models.Portfolio) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockPortfolioRepo) GetByID(ctx context.Context, id any, dest *models.Portfolio) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.Portfolio))
	}
	return args.Error(0)
}

func (m *mockPortfolioRepo) Update(ctx context.Context, obj *models.Portfolio) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockPortfolioRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPortfolioRepo) GetByUser(ctx context.Context, userID uuid.UUID, dest *models.Portfolio) error {
	args := m.Called(ctx, userID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.Portfolio))
	}
	return args.Error(0)
}

func (m *mockPortfolioRepo) GetPublishedBySlug(ctx context.Context, slug string, dest *models.Portfolio) error {
	args := m.Called(ctx, slug, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.Portfolio))
	}
	return args.Error(0)
}

func (m *mockPortfolioRepo) IncrementViews(ctx context.Context, portfolioID uuid.UUID) error {
	args := m.Called(ctx, portfolioID)
	return args.Error(0)
}

func (m *mockPortfolioRepo) Save(ctx context.Context, p *models.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type mockSectionRepo struct {
	mock.Mock
}

func (m *mockSectionRepo) Create(ctx context.Context, obj *models.CustomSection) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockSectionRepo) GetByID(ctx context.Context, id any, dest *models.CustomSection) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.CustomSection))
	}
	return args.Error(0)
}

func (m *mockSectionRepo) Update(ctx context.Context, obj *models.CustomSection) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockSectionRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSectionRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.CustomSection, error) {
	args := m.Called(ctx, portfolioID)
	if v := args.Get(0); v != nil {
		return v.([]models.CustomSection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSectionRepo) ListPublished(ctx context.Context, portfolioID uuid.UUID) ([]models.CustomSection, error) {
	args := m.Called(ctx, portfolioID)
	if v := args.Get(0); v != nil {
		return v.([]models.CustomSection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSectionRepo) GetOwned(ctx context.Context, id, portfolioID uuid.UUID, dest *models.CustomSection) error {
	args := m.Called(ctx, id, portfolioID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.CustomSection))
	}
	return args.Error(0)
}

func (m *mockSectionRepo) DeleteOwned(ctx context.Context, id, portfolioID uuid.UUID) error {
	args := m.Called(ctx, id, portfolioID)
	return args.Error(0)
}

func (m *mockSectionRepo) Reorder(ctx context.Context, portfolioID uuid.UUID, batch []repository.SectionOrder) error {
	args := m.Called(ctx, portfolioID, batch)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, obj *models.User) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id any, dest *models.User) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.User))
	}
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, obj *models.User) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	args := m.Called(ctx, email, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.User))
	}
	return args.Error(0)
}

type mockThemeRepo struct {
	mock.Mock
}

func (m *mockThemeRepo) GetByPortfolio(ctx context.Context, portfolioID uuid.UUID, dest *models.PortfolioTheme) error {
	args := m.Called(ctx, portfolioID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*models.PortfolioTheme))
	}
	return args.Error(0)
}

func (m *mockThemeRepo) Save(ctx context.Context, t *models.PortfolioTheme) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// mockOwnedRepo covers the five profile list repositories.
type mockOwnedRepo[T any] struct {
	mock.Mock
}

func (m *mockOwnedRepo[T]) Create(ctx context.Context, obj *T) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockOwnedRepo[T]) GetByID(ctx context.Context, id any, dest *T) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*T))
	}
	return args.Error(0)
}

func (m *mockOwnedRepo[T]) Update(ctx context.Context, obj *T) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockOwnedRepo[T]) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOwnedRepo[T]) ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOwnedRepo[T]) GetOwned(ctx context.Context, id, userID uuid.UUID, dest *T) error {
	args := m.Called(ctx, id, userID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *(args.Get(1).(*T))
	}
	return args.Error(0)
}

func (m *mockOwnedRepo[T]) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
