package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/model"
)

// CoachRepository defines coach profile persistence operations.
type CoachRepository interface {
	Create(ctx context.Context, coach *model.Coach) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Coach, error)
	// WithTransaction runs fn with transaction-scoped coach and user
	// repositories, so the profile insert and the role flip commit together.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, coaches CoachRepository, users UserRepository) error) error
}

type coachRepository struct {
	db *gorm.DB
}

// NewCoachRepository creates a new coach repository.
func NewCoachRepository(db *gorm.DB) CoachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *model.Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *coachRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Coach, error) {
	var coach model.Coach
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&coach).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, coaches CoachRepository, users UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &coachRepository{db: tx}, &userRepository{db: tx})
	})
}
