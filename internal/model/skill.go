package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is reference data describing what a course teaches.
type Skill struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
