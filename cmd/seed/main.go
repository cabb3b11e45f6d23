package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storeadmin/internal/config"
	"storeadmin/internal/db"
	"storeadmin/internal/model"
	"storeadmin/internal/repository"
)

// Seeds a demo admin with one store, one category, one subcategory and a
// couple of products, so a fresh instance has something to show.
// Re-running against a seeded database is a no-op.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Category{},
		&model.Subcategory{},
		&model.Product{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	stores := repository.NewStoreRepository(gormDB)
	categories := repository.NewCategoryRepository(gormDB)
	subcategories := repository.NewSubcategoryRepository(gormDB)
	products := repository.NewProductRepository(gormDB)

	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	admin, err := users.FindByEmail(ctx, email)
	if err == nil {
		log.Printf("Admin %s already exists, nothing to do", email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admin = &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Created admin %s", email)

	address := "Jl. Malioboro No. 52, Yogyakarta"
	store := &model.Store{Name: "Toko Utama", Address: &address, AdminID: admin.ID}
	if err := stores.Create(ctx, store); err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	category := &model.Category{Name: "Elektronik", StoreID: store.ID}
	if err := categories.Create(ctx, category); err != nil {
		log.Fatalf("Failed to create category: %v", err)
	}

	subcategory := &model.Subcategory{Name: "Ponsel", CategoryID: category.ID}
	if err := subcategories.Create(ctx, subcategory); err != nil {
		log.Fatalf("Failed to create subcategory: %v", err)
	}

	sku := "PSL-001"
	demo := []model.Product{
		{
			Name:          "Ponsel A1",
			Price:         decimal.NewFromInt(1250000),
			Stock:         5,
			SKU:           &sku,
			StoreID:       store.ID,
			SubcategoryID: subcategory.ID,
			IsActive:      model.ProductActive,
		},
		{
			Name:          "Ponsel B2",
			Price:         decimal.NewFromInt(2750000),
			Stock:         3,
			StoreID:       store.ID,
			SubcategoryID: subcategory.ID,
			IsActive:      model.ProductActive,
		},
	}
	for i := range demo {
		if err := products.Create(ctx, &demo[i]); err != nil {
			log.Fatalf("Failed to create product %s: %v", demo[i].Name, err)
		}
	}

	log.Printf("Seed completed: 1 store, 1 category, 1 subcategory, %d products", len(demo))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
