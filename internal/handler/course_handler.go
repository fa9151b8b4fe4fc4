package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fitcoach/internal/errors"
	"fitcoach/internal/response"
	"fitcoach/internal/service"
	"fitcoach/internal/validate"
)

// CourseHandler handles the public catalogue and the booking endpoints.
type CourseHandler struct {
	courseService  service.CourseService
	bookingService service.BookingService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService, bookingService service.BookingService) *CourseHandler {
	return &CourseHandler{
		courseService:  courseService,
		bookingService: bookingService,
	}
}

// ListCourses returns all courses with coach and skill names.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseService.ListCourses(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, courses)
}

// BookCourse books a seat in a course for the caller.
func (h *CourseHandler) BookCourse(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	courseID := c.Param("courseId")
	if validate.NotValidUUID(courseID) {
		return respondError(c, errors.ErrInvalidID)
	}

	if _, err := h.bookingService.BookCourse(c.Request().Context(), cl.UserID, uuid.MustParse(courseID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusCreated, nil)
}

// CancelBooking cancels the caller's active booking for a course.
func (h *CourseHandler) CancelBooking(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	courseID := c.Param("courseId")
	if validate.NotValidUUID(courseID) {
		return respondError(c, errors.ErrInvalidID)
	}

	if err := h.bookingService.CancelBooking(c.Request().Context(), cl.UserID, uuid.MustParse(courseID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, nil)
}
