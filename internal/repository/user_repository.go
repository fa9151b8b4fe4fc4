package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateName renames a user, guarded on the current name so concurrent
	// updates do not clobber each other. Returns affected rows.
	UpdateName(ctx context.Context, id uuid.UUID, fromName, toName string) (int64, error)
	// UpdateRole flips the role, guarded on the current role. Returns affected rows.
	UpdateRole(ctx context.Context, id uuid.UUID, fromRole, toRole string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateName(ctx context.Context, id uuid.UUID, fromName, toName string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND name = ?", id, fromName).
		Update("name", toName)
	return res.RowsAffected, res.Error
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, fromRole, toRole string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND role = ?", id, fromRole).
		Update("role", toRole)
	return res.RowsAffected, res.Error
}
