package main

import (
	"log"
	"net/http"
	"os"

	_ "storeadmin/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storeadmin/internal/auth"
	"storeadmin/internal/cache"
	"storeadmin/internal/config"
	"storeadmin/internal/db"
	"storeadmin/internal/handler"
	"storeadmin/internal/model"
	"storeadmin/internal/repository"
	"storeadmin/internal/router"
	"storeadmin/internal/service"
	"storeadmin/internal/storage"
)

// @title Storefront Admin API
// @version 1.0
// @description Admin panel API for managing stores, categories, subcategories and products, with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Product{},
			&model.Subcategory{},
			&model.Category{},
			&model.Store{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Category{},
		&model.Subcategory{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	imageStore, err := storage.NewDiskImageStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("image store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	subcategoryRepo := repository.NewSubcategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	adminGuard := auth.NewAdminGuard(userRepo, cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	storeService := service.NewStoreService(storeRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, storeRepo, cacheClient)
	subcategoryService := service.NewSubcategoryService(subcategoryRepo, categoryRepo, cacheClient)
	productService := service.NewProductService(productRepo, storeRepo, imageStore, cacheClient, cfg.UploadTimeout)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(adminGuard, storeService)
	categoryHandler := handler.NewCategoryHandler(adminGuard, categoryService)
	subcategoryHandler := handler.NewSubcategoryHandler(adminGuard, subcategoryService)
	productHandler := handler.NewProductHandler(adminGuard, productService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		storeHandler,
		categoryHandler,
		subcategoryHandler,
		productHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
