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

// SkillHandler handles skill reference data endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// CreateSkillRequest represents a skill creation request.
type CreateSkillRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListSkills returns all skills.
func (h *SkillHandler) ListSkills(c echo.Context) error {
	skills, err := h.skillService.ListSkills(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, skills)
}

// CreateSkill adds a skill with a unique name.
func (h *SkillHandler) CreateSkill(c echo.Context) error {
	var req CreateSkillRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil || validate.NotValidString(req.Name) {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	skill, err := h.skillService.CreateSkill(c.Request().Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusCreated, skill)
}

// DeleteSkill removes a skill by id.
func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	skillID := c.Param("skillId")
	if validate.NotValidUUID(skillID) {
		return respondError(c, errors.ErrInvalidID)
	}

	if err := h.skillService.DeleteSkill(c.Request().Context(), uuid.MustParse(skillID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, nil)
}
