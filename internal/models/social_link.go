package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink points to a profile on an external platform.
type SocialLink struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`

	Platform string `gorm:"not null" json:"platform" validate:"required"`
	URL      string `gorm:"not null" json:"url" validate:"required,url"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
