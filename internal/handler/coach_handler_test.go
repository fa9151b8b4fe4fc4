package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitcoach/internal/model"
)

type mockCoachService struct {
	mock.Mock
}

func (m *mockCoachService) PromoteToCoach(ctx context.Context, userID uuid.UUID, experienceYears int, description string, profileImageURL *string) (*model.User, *model.Coach, error) {
	args := m.Called(ctx, userID, experienceYears, description, profileImageURL)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*model.Coach), args.Error(2)
}

func (m *mockCoachService) CreateCourse(ctx context.Context, coachID uuid.UUID, course *model.Course) (*model.Course, error) {
	args := m.Called(ctx, coachID, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *mockCoachService) UpdateCourse(ctx context.Context, coachID, courseID uuid.UUID, course *model.Course) (*model.Course, error) {
	args := m.Called(ctx, coachID, courseID, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

type structValidator struct {
	validator *validator.Validate
}

func (v *structValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func promoteRequest(t *testing.T, userID string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &structValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/admin/coaches/"+userID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	return c, rec
}

func TestCoachHandler_PromoteCoach(t *testing.T) {
	userID := uuid.New()

	t.Run("zero years of experience accepted", func(t *testing.T) {
		coaches := new(mockCoachService)
		coaches.On("PromoteToCoach", mock.Anything, userID, 0, "剛轉任的教練", (*string)(nil)).
			Return(&model.User{ID: userID, Name: "Test", Role: model.RoleCoach},
				&model.Coach{UserID: userID, Description: "剛轉任的教練"}, nil)

		h := NewCoachHandler(coaches)
		c, rec := promoteRequest(t, userID.String(),
			`{"experience_years": 0, "description": "剛轉任的教練"}`)

		assert.NoError(t, h.PromoteCoach(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		coaches.AssertExpectations(t)
	})

	t.Run("negative years rejected before the service", func(t *testing.T) {
		coaches := new(mockCoachService)

		h := NewCoachHandler(coaches)
		c, rec := promoteRequest(t, userID.String(),
			`{"experience_years": -1, "description": "資深教練"}`)

		assert.NoError(t, h.PromoteCoach(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		coaches.AssertNotCalled(t, "PromoteToCoach",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank description rejected", func(t *testing.T) {
		coaches := new(mockCoachService)

		h := NewCoachHandler(coaches)
		c, rec := promoteRequest(t, userID.String(),
			`{"experience_years": 3, "description": "   "}`)

		assert.NoError(t, h.PromoteCoach(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		coaches.AssertNotCalled(t, "PromoteToCoach",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
