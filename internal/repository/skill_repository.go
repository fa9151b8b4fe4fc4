package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/model"
)

// SkillRepository defines skill persistence operations.
type SkillRepository interface {
	List(ctx context.Context) ([]model.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	// Delete removes a skill by id, returning affected rows.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("created_at").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Skill{})
	return res.RowsAffected, res.Error
}
