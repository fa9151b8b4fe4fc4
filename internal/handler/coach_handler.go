package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fitcoach/internal/errors"
	"fitcoach/internal/model"
	"fitcoach/internal/response"
	"fitcoach/internal/service"
	"fitcoach/internal/validate"
)

// CoachHandler handles coach promotion and course management endpoints.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new coach handler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// PromoteCoachRequest represents a coach promotion request.
type PromoteCoachRequest struct {
	ExperienceYears int     `json:"experience_years"`
	Description     string  `json:"description" validate:"required"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// CourseRequest represents course creation and update bodies. Every field
// is required; update replaces all of them atomically.
type CourseRequest struct {
	SkillID         string `json:"skill_id" validate:"required,uuid"`
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	StartAt         string `json:"start_at" validate:"required"`
	EndAt           string `json:"end_at" validate:"required"`
	MaxParticipants int    `json:"max_participants" validate:"required,gt=0"`
	MeetingURL      string `json:"meeting_url" validate:"required"`
}

// toCourse validates the free-form fields and builds the model.
func (r *CourseRequest) toCourse() (*model.Course, error) {
	if validate.NotValidString(r.Name) ||
		validate.NotValidString(r.Description) ||
		validate.NotValidMeetingURL(r.MeetingURL) {
		return nil, errors.ErrFieldsInvalid
	}
	startAt, ok := parseCourseTime(r.StartAt)
	if !ok {
		return nil, errors.ErrFieldsInvalid
	}
	endAt, ok := parseCourseTime(r.EndAt)
	if !ok || !endAt.After(startAt) {
		return nil, errors.ErrFieldsInvalid
	}
	return &model.Course{
		SkillID:         uuid.MustParse(r.SkillID),
		Name:            r.Name,
		Description:     r.Description,
		StartAt:         startAt,
		EndAt:           endAt,
		MaxParticipants: r.MaxParticipants,
		MeetingURL:      r.MeetingURL,
	}, nil
}

// PromoteCoach turns an existing user into a coach.
func (h *CoachHandler) PromoteCoach(c echo.Context) error {
	userID := c.Param("userId")
	if validate.NotValidUUID(userID) {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	var req PromoteCoachRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	// validator's required tag rejects the zero value, and zero years of
	// experience is legitimate, so the integer is gated by hand.
	if err := c.Validate(&req); err != nil ||
		validate.NotValidString(req.Description) ||
		validate.NotValidNonNegativeInt(req.ExperienceYears) {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if req.ProfileImageURL != nil && validate.NotValidMeetingURL(*req.ProfileImageURL) {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	user, coach, err := h.coachService.PromoteToCoach(
		c.Request().Context(), uuid.MustParse(userID),
		req.ExperienceYears, req.Description, req.ProfileImageURL,
	)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"user": echo.Map{
			"name": user.Name,
			"role": user.Role,
		},
		"coach": coach,
	})
}

// CreateCourse creates a course owned by the calling coach.
func (h *CoachHandler) CreateCourse(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	course, err := req.toCourse()
	if err != nil {
		return respondError(c, err)
	}

	created, err := h.coachService.CreateCourse(c.Request().Context(), cl.UserID, course)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusCreated, echo.Map{"course": created})
}

// UpdateCourse replaces the editable fields of a course the caller owns.
func (h *CoachHandler) UpdateCourse(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	courseID := c.Param("courseId")
	if validate.NotValidUUID(courseID) {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	course, err := req.toCourse()
	if err != nil {
		return respondError(c, err)
	}

	updated, err := h.coachService.UpdateCourse(c.Request().Context(), cl.UserID, uuid.MustParse(courseID), course)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, echo.Map{"course": updated})
}
