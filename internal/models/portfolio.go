package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portfolio is the public page for a user. One portfolio per user.
type Portfolio struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id" validate:"required"`

	Slug        string `gorm:"uniqueIndex;not null" json:"slug" validate:"required"`
	IsPublished bool   `gorm:"not null;default:false;index" json:"is_published"`
	ViewCount   int64  `gorm:"not null;default:0" json:"view_count"`

	SEOTitle       string `gorm:"column:seo_title" json:"seo_title"`
	SEODescription string `gorm:"column:seo_description;type:text" json:"seo_description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
