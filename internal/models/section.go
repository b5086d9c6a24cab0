package models

import (
	"time"

	"github.com/folioforge/engine/internal/content"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomSection is a user-defined portfolio block. Content is stored opaque
// and is only meaningful after validating it against the declared type tag.
type CustomSection struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PortfolioID uuid.UUID `gorm:"type:uuid;index;not null" json:"portfolio_id" validate:"required"`

	Title       string         `gorm:"not null" json:"title" validate:"required"`
	Type        content.Type   `gorm:"type:varchar(16);not null" json:"type" validate:"required,oneof=text gallery timeline skills custom"`
	Content     datatypes.JSON `gorm:"type:jsonb" json:"content"`
	Order       int            `gorm:"column:display_order;not null;default:0;index" json:"order"`
	IsPublished bool           `gorm:"not null;default:true" json:"is_published"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Portfolio Portfolio `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
}
