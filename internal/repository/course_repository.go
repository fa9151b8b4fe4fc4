package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitcoach/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	// FindByIDForUpdate locks the course row for the rest of the enclosing
	// transaction, serializing capacity checks against it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Course, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Course, error)
	// UpdateFields replaces every editable field atomically. Returns affected rows.
	UpdateFields(ctx context.Context, id uuid.UUID, course *model.Course) (int64, error)
	// ListWithRelations loads all courses with coach and skill preloaded.
	ListWithRelations(ctx context.Context) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) UpdateFields(ctx context.Context, id uuid.UUID, course *model.Course) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Course{}).
		Where("id = ?", id).
		Select("skill_id", "name", "description", "start_at", "end_at", "max_participants", "meeting_url").
		Updates(map[string]interface{}{
			"skill_id":         course.SkillID,
			"name":             course.Name,
			"description":      course.Description,
			"start_at":         course.StartAt,
			"end_at":           course.EndAt,
			"max_participants": course.MaxParticipants,
			"meeting_url":      course.MeetingURL,
		})
	return res.RowsAffected, res.Error
}

func (r *courseRepository) ListWithRelations(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skill").
		Order("start_at").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
