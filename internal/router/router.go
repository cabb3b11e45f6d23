package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storeadmin/internal/auth"
	"storeadmin/internal/config"
	"storeadmin/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	storeHandler *handler.StoreHandler,
	categoryHandler *handler.CategoryHandler,
	subcategoryHandler *handler.SubcategoryHandler,
	productHandler *handler.ProductHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.ContextTimeout(cfg.RequestTimeout))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded product images are served as static files.
	e.Static(cfg.UploadBaseURL, cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Admin routes (require JWT authentication; the admin guard inside
	// each handler enforces the role).
	admin := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Store routes
	admin.POST("/stores", storeHandler.Create)
	admin.GET("/stores", storeHandler.List)
	admin.PUT("/stores/:id", storeHandler.Update)
	admin.DELETE("/stores/:id", storeHandler.Delete)

	// Category routes
	admin.POST("/categories", categoryHandler.Create)
	admin.GET("/categories", categoryHandler.List)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	// Subcategory routes
	admin.POST("/subcategories", subcategoryHandler.Create)
	admin.GET("/subcategories", subcategoryHandler.List)
	admin.PUT("/subcategories/:id", subcategoryHandler.Update)
	admin.DELETE("/subcategories/:id", subcategoryHandler.Delete)

	// Product routes
	admin.POST("/products", productHandler.Create)
	admin.GET("/products", productHandler.List)
	admin.PUT("/products/:id", productHandler.Update)
	admin.PATCH("/products/:id/status", productHandler.ToggleStatus)
	admin.DELETE("/products/:id", productHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
