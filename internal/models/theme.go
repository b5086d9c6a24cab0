package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Theme layouts supported by the public page.
const (
	LayoutGrid     = "grid"
	LayoutTimeline = "timeline"
	LayoutCards    = "cards"
)

// PortfolioTheme holds the visual configuration of a portfolio, 1:1 with it.
// Colors are hex-validated and CustomCSS is sanitized before this row is
// written; the model stores them as given.
type PortfolioTheme struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PortfolioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"portfolio_id" validate:"required"`

	Layout          string `gorm:"type:varchar(32);not null;default:'grid'" json:"layout" validate:"required,oneof=grid timeline cards"`
	PrimaryColor    string `gorm:"type:varchar(8);not null;default:'#2563eb'" json:"primary_color"`
	BackgroundColor string `gorm:"type:varchar(8);not null;default:'#ffffff'" json:"background_color"`
	TextColor       string `gorm:"type:varchar(8);not null;default:'#111827'" json:"text_color"`
	FontFamily      string `gorm:"not null;default:'Inter'" json:"font_family"`
	BackgroundImage string `json:"background_image"`
	CustomCSS       string `gorm:"column:custom_css;type:text" json:"custom_css"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Portfolio Portfolio `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
}
