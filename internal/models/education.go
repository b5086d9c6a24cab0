package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Education is a single schooling entry.
type Education struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`

	School      string `gorm:"not null" json:"school" validate:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year" validate:"omitempty,gte=1900,lte=2100"`
	EndYear     int    `json:"end_year" validate:"omitempty,gte=1900,lte=2100"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
