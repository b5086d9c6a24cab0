package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the root of ownership: every other entity hangs off a user and is
// removed with it.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Email string `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	// Empty when the account was created through an OAuth provider.
	PasswordHash string `gorm:"" json:"-"`

	Name     string `gorm:"not null" json:"name" validate:"required"`
	Headline string `json:"headline"`
	Bio      string `gorm:"type:text" json:"bio"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Website  string `json:"website" validate:"omitempty,url"`
	// Data URL produced by the avatar upload endpoint.
	Avatar string `gorm:"type:text" json:"avatar"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
