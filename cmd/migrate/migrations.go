package main

import (
	"gorm.io/gorm"

	"github.com/folioforge/engine/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		// Identity
		&models.User{},

		// Portfolio & presentation
		&models.Portfolio{},
		&models.PortfolioTheme{},
		&models.CustomSection{},

		// Profile lists
		&models.Experience{},
		&models.Education{},
		&models.Project{},
		&models.Skill{},
		&models.SocialLink{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return addSectionOrderIndex(db)
}

// gen_random_uuid() needs pgcrypto on PostgreSQL < 13.
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// Section lists are always read in display order for one portfolio.
func addSectionOrderIndex(db *gorm.DB) error {
	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_sections_portfolio_order
		ON custom_sections (portfolio_id, display_order, created_at, id)`).Error
}
