package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a showcased piece of work, ordered within the portfolio.
type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`

	Title        string `gorm:"not null" json:"title" validate:"required"`
	Description  string `gorm:"type:text" json:"description"`
	URL          string `json:"url" validate:"omitempty,url"`
	RepoURL      string `json:"repo_url" validate:"omitempty,url"`
	Image        string `json:"image"`
	Technologies string `json:"technologies"`
	Order        int    `gorm:"column:display_order;not null;default:0;index" json:"order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
