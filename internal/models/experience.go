package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience is a single work-history entry.
type Experience struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`

	Company     string     `gorm:"not null" json:"company" validate:"required"`
	Position    string     `gorm:"not null" json:"position" validate:"required"`
	StartDate   time.Time  `gorm:"not null" json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `gorm:"not null;default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
