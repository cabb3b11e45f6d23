package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storeadmin/internal/auth"
	"storeadmin/internal/service"
)

// SubcategoryHandler handles subcategory endpoints.
type SubcategoryHandler struct {
	guard              *auth.AdminGuard
	subcategoryService service.SubcategoryService
}

// NewSubcategoryHandler creates a new subcategory handler.
func NewSubcategoryHandler(guard *auth.AdminGuard, subcategoryService service.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{guard: guard, subcategoryService: subcategoryService}
}

// CreateSubcategoryRequest represents a subcategory creation payload.
type CreateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// UpdateSubcategoryRequest represents a subcategory edit payload. The
// category id may differ from the current parent to move the
// subcategory.
type UpdateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// Create godoc
// @Summary Create a subcategory under one of the caller's categories
// @Tags subcategories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubcategoryRequest true "Subcategory data"
// @Success 201 {object} model.Subcategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subcategories [post]
func (h *SubcategoryHandler) Create(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	var req CreateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return invalidUUID()
	}

	subcategory, err := h.subcategoryService.Create(c.Request().Context(), admin.ID, req.Name, categoryID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, subcategory)
}

// List godoc
// @Summary List the caller's subcategories with their category names
// @Tags subcategories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SubcategoryListing
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /subcategories [get]
func (h *SubcategoryHandler) List(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	listings, err := h.subcategoryService.ListForAdmin(c.Request().Context(), admin.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Update godoc
// @Summary Rename a subcategory and optionally move it to another category
// @Tags subcategories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcategory ID"
// @Param request body UpdateSubcategoryRequest true "Subcategory data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	subcategoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	var req UpdateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return invalidUUID()
	}

	if err := h.subcategoryService.Update(c.Request().Context(), admin.ID, subcategoryID, categoryID, req.Name); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "subcategory updated"})
}

// Delete godoc
// @Summary Delete a subcategory
// @Tags subcategories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subcategory ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	subcategoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	if err := h.subcategoryService.Delete(c.Request().Context(), admin.ID, subcategoryID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "subcategory deleted"})
}
