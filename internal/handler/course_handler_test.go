package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitcoach/internal/auth"
	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/service"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) BookCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.CourseBooking, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseBooking), args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, userID, courseID uuid.UUID) error {
	args := m.Called(ctx, userID, courseID)
	return args.Error(0)
}

func (m *mockBookingService) RemainingCredits(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCourseService struct {
	mock.Mock
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]service.CourseListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CourseListItem), args.Error(1)
}

func bookingRequest(t *testing.T, method string, userID uuid.UUID, courseID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/courses/"+courseID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("courseId")
	c.SetParamValues(courseID)
	c.Set("user", &auth.Claims{UserID: userID})
	return c, rec
}

func TestCourseHandler_BookCourse(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()

	tests := []struct {
		name            string
		serviceError    error
		expectedCode    int
		expectedStatus  string
		expectedMessage string
	}{
		{"booking committed", nil, http.StatusCreated, "success", ""},
		{"course missing", errors.ErrInvalidID, http.StatusBadRequest, "failed", "ID錯誤"},
		{"already booked", errors.ErrAlreadyBooked, http.StatusBadRequest, "failed", "已經報名過此課程"},
		{"no credits", errors.ErrInsufficientCredits, http.StatusBadRequest, "failed", "已無可使用堂數"},
		{"course full", errors.ErrCourseFull, http.StatusBadRequest, "failed", "已達最大參加人數，無法參加"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(mockBookingService)
			if tt.serviceError == nil {
				bookings.On("BookCourse", mock.Anything, userID, courseID).
					Return(&model.CourseBooking{UserID: userID, CourseID: courseID}, nil)
			} else {
				bookings.On("BookCourse", mock.Anything, userID, courseID).
					Return(nil, tt.serviceError)
			}

			h := NewCourseHandler(new(mockCourseService), bookings)
			c, rec := bookingRequest(t, http.MethodPost, userID, courseID.String())

			assert.NoError(t, h.BookCourse(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body["status"])
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}

	t.Run("malformed course id short-circuits before the service", func(t *testing.T) {
		bookings := new(mockBookingService)
		h := NewCourseHandler(new(mockCourseService), bookings)
		c, rec := bookingRequest(t, http.MethodPost, userID, "not-a-uuid")

		assert.NoError(t, h.BookCourse(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		bookings.AssertNotCalled(t, "BookCourse", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCourseHandler_CancelBooking(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()

	t.Run("cancel active booking", func(t *testing.T) {
		bookings := new(mockBookingService)
		bookings.On("CancelBooking", mock.Anything, userID, courseID).Return(nil)

		h := NewCourseHandler(new(mockCourseService), bookings)
		c, rec := bookingRequest(t, http.MethodDelete, userID, courseID.String())

		assert.NoError(t, h.CancelBooking(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no active booking", func(t *testing.T) {
		bookings := new(mockBookingService)
		bookings.On("CancelBooking", mock.Anything, userID, courseID).Return(errors.ErrInvalidID)

		h := NewCourseHandler(new(mockCourseService), bookings)
		c, rec := bookingRequest(t, http.MethodDelete, userID, courseID.String())

		assert.NoError(t, h.CancelBooking(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
