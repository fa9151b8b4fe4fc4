package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fitcoach/internal/errors"
	"fitcoach/internal/response"
	"fitcoach/internal/service"
	"fitcoach/internal/validate"
)

// CreditPackageHandler handles credit package and purchase endpoints.
type CreditPackageHandler struct {
	packageService service.CreditPackageService
}

// NewCreditPackageHandler creates a new credit package handler.
func NewCreditPackageHandler(packageService service.CreditPackageService) *CreditPackageHandler {
	return &CreditPackageHandler{packageService: packageService}
}

// CreatePackageRequest represents a package creation request.
type CreatePackageRequest struct {
	Name         string          `json:"name" validate:"required"`
	CreditAmount int             `json:"credit_amount" validate:"required,gt=0"`
	Price        decimal.Decimal `json:"price"`
}

// ListPackages returns all credit packages.
func (h *CreditPackageHandler) ListPackages(c echo.Context) error {
	packages, err := h.packageService.ListPackages(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, packages)
}

// CreatePackage adds a package with a unique name.
func (h *CreditPackageHandler) CreatePackage(c echo.Context) error {
	var req CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrFieldsInvalid)
	}
	if err := c.Validate(&req); err != nil || validate.NotValidString(req.Name) || req.Price.IsNegative() {
		return respondError(c, errors.ErrFieldsInvalid)
	}

	pkg, err := h.packageService.CreatePackage(c.Request().Context(), req.Name, req.CreditAmount, req.Price)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusCreated, pkg)
}

// PurchasePackage records a purchase of the package for the caller.
func (h *CreditPackageHandler) PurchasePackage(c echo.Context) error {
	cl, err := claims(c)
	if err != nil {
		return err
	}

	packageID := c.Param("creditPackageId")
	if validate.NotValidUUID(packageID) {
		return respondError(c, errors.ErrInvalidID)
	}

	if _, err := h.packageService.PurchasePackage(c.Request().Context(), cl.UserID, uuid.MustParse(packageID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusCreated, nil)
}

// DeletePackage removes a package by id.
func (h *CreditPackageHandler) DeletePackage(c echo.Context) error {
	packageID := c.Param("creditPackageId")
	if validate.NotValidUUID(packageID) {
		return respondError(c, errors.ErrInvalidID)
	}

	if err := h.packageService.DeletePackage(c.Request().Context(), uuid.MustParse(packageID)); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, http.StatusOK, nil)
}
