package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a named proficiency grouped by category on the public page.
type Skill struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`

	Name     string `gorm:"not null" json:"name" validate:"required"`
	Level    int    `gorm:"not null;default:0" json:"level" validate:"gte=0,lte=100"`
	Category string `gorm:"not null;default:'General'" json:"category"`
	Order    int    `gorm:"column:display_order;not null;default:0;index" json:"order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
