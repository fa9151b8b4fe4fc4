package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitcoach/internal/cache"
	"fitcoach/internal/repository"
)

const (
	courseListCacheKey = "courses:list"
	courseListCacheTTL = 5 * time.Minute
)

// CourseListItem is the public listing projection of a course.
type CourseListItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	MaxParticipants int       `json:"max_participants"`
	CoachName       string    `json:"coach_name"`
	SkillName       string    `json:"skill_name"`
}

// CourseService serves the public course catalogue.
type CourseService interface {
	ListCourses(ctx context.Context) ([]CourseListItem, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	cache      *cache.Client
}

// NewCourseService creates a new course service.
func NewCourseService(courseRepo repository.CourseRepository, cache *cache.Client) CourseService {
	return &courseService{courseRepo: courseRepo, cache: cache}
}

// ListCourses returns every course with coach and skill names, cached
// briefly in redis. The cache is invalidated whenever a coach creates or
// updates a course.
func (s *courseService) ListCourses(ctx context.Context) ([]CourseListItem, error) {
	var cached []CourseListItem
	if hit, _ := s.cache.GetJSON(ctx, courseListCacheKey, &cached); hit {
		return cached, nil
	}

	courses, err := s.courseRepo.ListWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	items := make([]CourseListItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, CourseListItem{
			ID:              course.ID,
			Name:            course.Name,
			Description:     course.Description,
			StartAt:         course.StartAt,
			EndAt:           course.EndAt,
			MaxParticipants: course.MaxParticipants,
			CoachName:       course.User.Name,
			SkillName:       course.Skill.Name,
		})
	}

	_ = s.cache.SetJSON(ctx, courseListCacheKey, items, courseListCacheTTL)
	return items, nil
}
