package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

// SkillService manages the skill reference data.
type SkillService interface {
	ListSkills(ctx context.Context) ([]model.Skill, error)
	CreateSkill(ctx context.Context, name string) (*model.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type skillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new skill service.
func NewSkillService(skillRepo repository.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) ListSkills(ctx context.Context) ([]model.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (s *skillService) CreateSkill(ctx context.Context, name string) (*model.Skill, error) {
	_, err := s.skillRepo.FindByName(ctx, name)
	if err == nil {
		return nil, errors.ErrDuplicateName
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check skill name: %w", err)
	}

	skill := &model.Skill{Name: name}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrDuplicateName
		}
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return skill, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	affected, err := s.skillRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return errors.ErrInvalidID
	}
	return nil
}
