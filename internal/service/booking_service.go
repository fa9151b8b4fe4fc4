package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

// BookingService is the booking eligibility engine. A booking request is
// accepted only when, in this order: the course exists, no (user, course)
// booking row exists yet, the user's active bookings are below their
// purchased credits, and the course still has a free seat. The order is part
// of the contract: it decides which rejection a client sees when several
// rules are violated at once.
//
// Policy note: the uniqueness key is (user, course) for the lifetime of the
// row, so a course cancelled earlier cannot be booked again.
type BookingService interface {
	BookCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.CourseBooking, error)
	CancelBooking(ctx context.Context, userID, courseID uuid.UUID) error
	// RemainingCredits is the user's purchased total minus active bookings.
	RemainingCredits(ctx context.Context, userID uuid.UUID) (int64, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	purchaseRepo repository.CreditPurchaseRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, purchaseRepo repository.CreditPurchaseRepository) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		purchaseRepo: purchaseRepo,
	}
}

// BookCourse runs the eligibility checks and inserts the booking row. The
// whole sequence executes inside one transaction with the course row locked,
// so two requests racing for the last seat serialize instead of both
// committing. The (user_id, course_id) unique index backs up the
// AlreadyBooked check: a racing duplicate insert comes back as
// gorm.ErrDuplicatedKey and maps to the same domain error.
func (s *bookingService) BookCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.CourseBooking, error) {
	var booking *model.CourseBooking

	err := s.bookingRepo.WithTransaction(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		course, err := repos.Courses.FindByIDForUpdate(ctx, courseID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrInvalidID
			}
			return fmt.Errorf("find course: %w", err)
		}

		_, err = repos.Bookings.FindByUserAndCourse(ctx, userID, courseID)
		if err == nil {
			return errors.ErrAlreadyBooked
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find booking: %w", err)
		}

		purchased, err := repos.Purchases.SumPurchasedCredits(ctx, userID)
		if err != nil {
			return fmt.Errorf("sum purchased credits: %w", err)
		}
		used, err := repos.Bookings.CountActiveForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count used credits: %w", err)
		}
		if used >= purchased {
			return errors.ErrInsufficientCredits
		}

		active, err := repos.Bookings.CountActiveForCourse(ctx, courseID)
		if err != nil {
			return fmt.Errorf("count course bookings: %w", err)
		}
		if active >= int64(course.MaxParticipants) {
			return errors.ErrCourseFull
		}

		booking = &model.CourseBooking{UserID: userID, CourseID: courseID}
		if err := repos.Bookings.Create(ctx, booking); err != nil {
			if stderrors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.ErrAlreadyBooked
			}
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// CancelBooking stamps cancelled_at on the active booking. The conditional
// update is atomic: zero affected rows covers never-booked and
// already-cancelled alike, so a second cancel is rejected rather than
// re-stamped.
func (s *bookingService) CancelBooking(ctx context.Context, userID, courseID uuid.UUID) error {
	affected, err := s.bookingRepo.Cancel(ctx, userID, courseID, time.Now())
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if affected == 0 {
		return errors.ErrInvalidID
	}
	return nil
}

func (s *bookingService) RemainingCredits(ctx context.Context, userID uuid.UUID) (int64, error) {
	purchased, err := s.purchaseRepo.SumPurchasedCredits(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("sum purchased credits: %w", err)
	}
	used, err := s.bookingRepo.CountActiveForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count used credits: %w", err)
	}
	return purchased - used, nil
}
