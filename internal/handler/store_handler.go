package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storeadmin/internal/auth"
	"storeadmin/internal/errors"
	"storeadmin/internal/service"
)

// StoreHandler handles store endpoints.
type StoreHandler struct {
	guard        *auth.AdminGuard
	storeService service.StoreService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(guard *auth.AdminGuard, storeService service.StoreService) *StoreHandler {
	return &StoreHandler{guard: guard, storeService: storeService}
}

// StoreRequest represents a store create or update payload.
type StoreRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
}

// Create godoc
// @Summary Create a store owned by the caller
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StoreRequest true "Store data"
// @Success 201 {object} model.Store
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.Create(c.Request().Context(), admin.ID, req.Name, req.Address)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, store)
}

// List godoc
// @Summary List the caller's stores
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match over name and address"
// @Success 200 {array} model.Store
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	stores, err := h.storeService.List(c.Request().Context(), admin.ID, c.QueryParam("search"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stores)
}

// Update godoc
// @Summary Update a store's name and address
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body StoreRequest true "Store data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /stores/{id} [put]
func (h *StoreHandler) Update(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.storeService.Update(c.Request().Context(), admin.ID, storeID, req.Name, req.Address); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "store updated"})
}

// Delete godoc
// @Summary Delete a store
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /stores/{id} [delete]
func (h *StoreHandler) Delete(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	if err := h.storeService.Delete(c.Request().Context(), admin.ID, storeID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "store deleted"})
}

// mapError translates a domain error into an echo HTTP error.
func mapError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidUUID() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid id",
		Code:  "INVALID_UUID",
	})
}
