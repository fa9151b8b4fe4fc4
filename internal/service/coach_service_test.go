package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fitcoach/internal/errors"
	"fitcoach/internal/model"
)

func TestCoachService_PromoteToCoach(t *testing.T) {
	userID := uuid.New()

	t.Run("promote user", func(t *testing.T) {
		users := new(MockUserRepository)
		coaches := &MockCoachRepository{users: users}
		users.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Name: "Test User", Role: model.RoleUser}, nil)
		users.On("UpdateRole", mock.Anything, userID, model.RoleUser, model.RoleCoach).Return(int64(1), nil)
		coaches.On("Create", mock.Anything, mock.AnythingOfType("*model.Coach")).Return(nil)

		svc := NewCoachService(coaches, users, new(MockCourseRepository), nil)
		user, coach, err := svc.PromoteToCoach(context.Background(), userID, 5, "resistance training", nil)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleCoach, user.Role)
		assert.Equal(t, userID, coach.UserID)
		assert.Equal(t, 5, coach.ExperienceYears)
		users.AssertExpectations(t)
		coaches.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		coaches := &MockCoachRepository{users: users}
		users.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCoachService(coaches, users, new(MockCourseRepository), nil)
		_, _, err := svc.PromoteToCoach(context.Background(), userID, 5, "resistance training", nil)

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("already a coach", func(t *testing.T) {
		users := new(MockUserRepository)
		coaches := &MockCoachRepository{users: users}
		users.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Role: model.RoleCoach}, nil)

		svc := NewCoachService(coaches, users, new(MockCourseRepository), nil)
		_, _, err := svc.PromoteToCoach(context.Background(), userID, 5, "resistance training", nil)

		assert.ErrorIs(t, err, errors.ErrAlreadyCoach)
		users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost promotion race", func(t *testing.T) {
		// The role flip is guarded on the current role; zero affected rows
		// means a concurrent request promoted the user first.
		users := new(MockUserRepository)
		coaches := &MockCoachRepository{users: users}
		users.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Role: model.RoleUser}, nil)
		users.On("UpdateRole", mock.Anything, userID, model.RoleUser, model.RoleCoach).Return(int64(0), nil)

		svc := NewCoachService(coaches, users, new(MockCourseRepository), nil)
		_, _, err := svc.PromoteToCoach(context.Background(), userID, 5, "resistance training", nil)

		assert.ErrorIs(t, err, errors.ErrAlreadyCoach)
		coaches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCoachService_UpdateCourse(t *testing.T) {
	coachID := uuid.New()
	courseID := uuid.New()
	input := &model.Course{
		SkillID:         uuid.New(),
		Name:            "Updated",
		Description:     "desc",
		StartAt:         time.Now(),
		EndAt:           time.Now().Add(time.Hour),
		MaxParticipants: 10,
		MeetingURL:      "https://meet.example.com/abc",
	}

	t.Run("update owned course", func(t *testing.T) {
		courses := new(MockCourseRepository)
		courses.On("FindByIDAndOwner", mock.Anything, courseID, coachID).
			Return(&model.Course{ID: courseID, UserID: coachID}, nil)
		courses.On("UpdateFields", mock.Anything, courseID, input).Return(int64(1), nil)
		courses.On("FindByID", mock.Anything, courseID).
			Return(&model.Course{ID: courseID, UserID: coachID, Name: "Updated"}, nil)

		svc := NewCoachService(&MockCoachRepository{}, new(MockUserRepository), courses, nil)
		updated, err := svc.UpdateCourse(context.Background(), coachID, courseID, input)

		assert.NoError(t, err)
		assert.Equal(t, "Updated", updated.Name)
		courses.AssertExpectations(t)
	})

	t.Run("course not owned", func(t *testing.T) {
		courses := new(MockCourseRepository)
		courses.On("FindByIDAndOwner", mock.Anything, courseID, coachID).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewCoachService(&MockCoachRepository{}, new(MockUserRepository), courses, nil)
		_, err := svc.UpdateCourse(context.Background(), coachID, courseID, input)

		assert.ErrorIs(t, err, errors.ErrCourseNotOwned)
		courses.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})
}
