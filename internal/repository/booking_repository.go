package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/model"
)

// TxRepositories bundles the repositories the booking flow reads and writes
// inside a single transaction.
type TxRepositories struct {
	Courses   CourseRepository
	Bookings  BookingRepository
	Purchases CreditPurchaseRepository
}

// BookingRepository defines the booking ledger.
type BookingRepository interface {
	// FindByUserAndCourse returns the unique (user, course) row regardless of
	// cancellation state, or gorm.ErrRecordNotFound.
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.CourseBooking, error)
	// CountActiveForCourse counts uncancelled bookings holding seats in a course.
	CountActiveForCourse(ctx context.Context, courseID uuid.UUID) (int64, error)
	// CountActiveForUser counts uncancelled bookings, i.e. the user's used credits.
	CountActiveForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Create(ctx context.Context, booking *model.CourseBooking) error
	// Cancel stamps cancelled_at on the active (user, course) row. Returns
	// affected rows; 0 covers both never-booked and already-cancelled.
	Cancel(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (int64, error)
	// WithTransaction runs fn with transaction-scoped repositories so the
	// eligibility checks and the terminal write commit or roll back as one.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.CourseBooking, error) {
	var booking model.CourseBooking
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CountActiveForCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CourseBooking{}).
		Where("course_id = ? AND cancelled_at IS NULL", courseID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountActiveForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CourseBooking{}).
		Where("user_id = ? AND cancelled_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.CourseBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Cancel(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.CourseBooking{}).
		Where("user_id = ? AND course_id = ? AND cancelled_at IS NULL", userID, courseID).
		Update("cancelled_at", at)
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, TxRepositories{
			Courses:   &courseRepository{db: tx},
			Bookings:  &bookingRepository{db: tx},
			Purchases: &creditPurchaseRepository{db: tx},
		})
	})
}
