package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storeadmin/internal/auth"
	"storeadmin/internal/errors"
	"storeadmin/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	guard          *auth.AdminGuard
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(guard *auth.AdminGuard, productService service.ProductService) *ProductHandler {
	return &ProductHandler{guard: guard, productService: productService}
}

// UpdateProductRequest represents a full product overwrite payload.
type UpdateProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    *string `json:"description"`
	Price          string  `json:"price" validate:"required"`
	ProductionCost *string `json:"production_cost"`
	Stock          *int    `json:"stock"`
	SKU            *string `json:"sku"`
	ImageURL       *string `json:"image_url"`
	StoreID        string  `json:"store_id" validate:"required,uuid"`
	SubcategoryID  string  `json:"subcategory_id" validate:"required,uuid"`
}

// Create godoc
// @Summary Create a product from a multipart form, with an optional image
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param price formData string true "Price"
// @Param store_id formData string true "Store ID"
// @Param subcategory_id formData string true "Subcategory ID"
// @Param description formData string false "Description"
// @Param production_cost formData string false "Production cost"
// @Param stock formData int false "Stock (defaults to 0)"
// @Param sku formData string false "SKU"
// @Param image formData file false "Product image"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	storeID, err := uuid.Parse(c.FormValue("store_id"))
	if err != nil {
		return invalidUUID()
	}
	subcategoryID, err := uuid.Parse(c.FormValue("subcategory_id"))
	if err != nil {
		return invalidUUID()
	}

	var stock *int
	if v := c.FormValue("stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "stock must be an integer",
				Code:  "VALIDATION_ERROR",
			})
		}
		stock = &n
	}

	// Absent file is fine; the service treats a nil header as "no image".
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	in := service.CreateProductInput{
		Name:           c.FormValue("name"),
		Description:    optional(c.FormValue("description")),
		Price:          c.FormValue("price"),
		ProductionCost: optional(c.FormValue("production_cost")),
		Stock:          stock,
		SKU:            optional(c.FormValue("sku")),
		StoreID:        storeID,
		SubcategoryID:  subcategoryID,
		Image:          image,
	}

	product, err := h.productService.Create(c.Request().Context(), admin.ID, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// List godoc
// @Summary List the caller's products with store, subcategory and category names
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProductListing
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	listings, err := h.productService.ListForAdmin(c.Request().Context(), admin.ID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Update godoc
// @Summary Overwrite a product's mutable fields
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Product data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	var req UpdateProductRequest
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
	subcategoryID, err := uuid.Parse(req.SubcategoryID)
	if err != nil {
		return invalidUUID()
	}

	in := service.UpdateProductInput{
		ProductID:      productID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ProductionCost: req.ProductionCost,
		Stock:          req.Stock,
		SKU:            req.SKU,
		ImageURL:       req.ImageURL,
		StoreID:        storeID,
		SubcategoryID:  subcategoryID,
	}

	if err := h.productService.Update(c.Request().Context(), admin.ID, in); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product updated"})
}

// ToggleStatus godoc
// @Summary Flip a product between active and inactive
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/status [patch]
func (h *ProductHandler) ToggleStatus(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	if err := h.productService.ToggleStatus(c.Request().Context(), admin.ID, productID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product status toggled"})
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	admin, err := h.guard.RequireAdmin(c.Request().Context(), callerID(c))
	if err != nil {
		return mapError(err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID()
	}

	if err := h.productService.Delete(c.Request().Context(), admin.ID, productID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

// optional maps an empty form value to nil.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
