package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values a user can hold. Promotion is one-way: USER becomes COACH
// through coach registration and never reverses.
const (
	RoleUser  = "USER"
	RoleCoach = "COACH"
)

// User represents a registered member of the platform.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string    `json:"-" gorm:"size:72;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:20;not null;default:'USER';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
