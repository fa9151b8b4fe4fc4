package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/cache"
	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

// CoachService covers coach promotion and course management.
type CoachService interface {
	// PromoteToCoach creates the coach profile and flips the user role
	// USER -> COACH in one transaction.
	PromoteToCoach(ctx context.Context, userID uuid.UUID, experienceYears int, description string, profileImageURL *string) (*model.User, *model.Coach, error)
	CreateCourse(ctx context.Context, coachID uuid.UUID, course *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, coachID, courseID uuid.UUID, course *model.Course) (*model.Course, error)
}

type coachService struct {
	coachRepo  repository.CoachRepository
	userRepo   repository.UserRepository
	courseRepo repository.CourseRepository
	cache      *cache.Client
}

// NewCoachService creates a new coach service.
func NewCoachService(
	coachRepo repository.CoachRepository,
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	cache *cache.Client,
) CoachService {
	return &coachService{
		coachRepo:  coachRepo,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		cache:      cache,
	}
}

func (s *coachService) PromoteToCoach(ctx context.Context, userID uuid.UUID, experienceYears int, description string, profileImageURL *string) (*model.User, *model.Coach, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	if user.Role == model.RoleCoach {
		return nil, nil, errors.ErrAlreadyCoach
	}

	coach := &model.Coach{
		UserID:          userID,
		ExperienceYears: experienceYears,
		Description:     description,
		ProfileImageURL: profileImageURL,
	}

	err = s.coachRepo.WithTransaction(ctx, func(ctx context.Context, coaches repository.CoachRepository, users repository.UserRepository) error {
		affected, err := users.UpdateRole(ctx, userID, model.RoleUser, model.RoleCoach)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		if affected == 0 {
			// lost the race to another promotion request
			return errors.ErrAlreadyCoach
		}
		if err := coaches.Create(ctx, coach); err != nil {
			if stderrors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.ErrAlreadyCoach
			}
			return fmt.Errorf("create coach: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	user.Role = model.RoleCoach
	return user, coach, nil
}

func (s *coachService) CreateCourse(ctx context.Context, coachID uuid.UUID, course *model.Course) (*model.Course, error) {
	course.UserID = coachID
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	created, err := s.courseRepo.FindByID(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("reload course: %w", err)
	}

	_ = s.cache.Delete(ctx, courseListCacheKey)
	return created, nil
}

// UpdateCourse replaces all editable fields of a course the coach owns.
func (s *coachService) UpdateCourse(ctx context.Context, coachID, courseID uuid.UUID, course *model.Course) (*model.Course, error) {
	if _, err := s.courseRepo.FindByIDAndOwner(ctx, courseID, coachID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrCourseNotOwned
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	affected, err := s.courseRepo.UpdateFields(ctx, courseID, course)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	if affected == 0 {
		return nil, errors.ErrCourseNotOwned
	}

	updated, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("reload course: %w", err)
	}

	_ = s.cache.Delete(ctx, courseListCacheKey)
	return updated, nil
}
