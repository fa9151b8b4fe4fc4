package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitcoach/internal/errors"
	"fitcoach/internal/response"
	"fitcoach/internal/service"
)

// UserHandler handles signup, login and profile endpoints.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// SignUpRequest represents a signup request.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest represents a profile update request.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

// SignUp registers a new user.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"user": echo.Map{
			"id":   user.ID,
			"name": user.Name,
		},
	})
}

// Login authenticates a user and returns a token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"token":         accessToken,
		"refresh_token": refreshToken,
		"user": echo.Map{
			"name": user.Name,
		},
	})
}

// Refresh exchanges a refresh token for a new access token.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"token": accessToken})
}

// Logout invalidates the presented refresh token.
func (h *UserHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, nil)
}

// GetProfile returns the caller's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetProfile(c.Request().Context(), cl.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user": echo.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// UpdateProfile renames the caller.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	user, err := h.authService.UpdateName(c.Request().Context(), cl.UserID, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user": echo.Map{"name": user.Name},
	})
}
