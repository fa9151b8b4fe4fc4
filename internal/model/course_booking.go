package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseBooking is a user's seat in a course. A booking is active while
// CancelledAt is null; cancellation sets the timestamp once and the row is
// never deleted. The composite unique index enforces at most one row per
// (user, course) for the lifetime of the pair, which also means a cancelled
// course cannot be re-booked.
type CourseBooking struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_user_course"`
	CourseID    uuid.UUID  `json:"course_id" gorm:"type:char(36);not null;uniqueIndex:idx_user_course;index"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Course Course `json:"-" gorm:"foreignKey:CourseID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *CourseBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Active reports whether the booking still occupies a seat.
func (b *CourseBooking) Active() bool {
	return b.CancelledAt == nil
}
