package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storeadmin/internal/auth"
	"storeadmin/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	guard           *auth.AdminGuard
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(guard *auth.AdminGuard, categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{guard: guard, categoryService: categoryService}
}

// CreateCategoryRequest represents a category creation payload.
type CreateCategoryRequest struct {
	Name    string `json:"name" validate:"required"`
	StoreID string `json:"store_id" validate:"required,uuid"`
}

// UpdateCategoryRequest represents a category rename payload.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create godoc
// @Summary Create a category under one of the caller's stores
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "Category data"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return invalidUUID()
	}

	category, err := h.categoryService.Create(c.Request().Context(), admin.ID, req.Name, storeID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// List godoc
// @Summary List the caller's categories with their store names
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CategoryListing
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	listings, err := h.categoryService.ListForAdmin(c.Request().Context(), admin.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Update godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Category data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.categoryService.Update(c.Request().Context(), admin.ID, categoryID, req.Name); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category updated"})
}

// Delete godoc
// @Summary Delete a category and all of its subcategories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	if err := h.categoryService.Delete(c.Request().Context(), admin.ID, categoryID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
