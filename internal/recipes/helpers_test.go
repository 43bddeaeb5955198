package recipes

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cocina/models"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:recipes-%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "-"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Ingredient{},
		&models.Material{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeMaterial{},
		&models.Order{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "hash", Role: models.RoleAdmin}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create admin user: %v", err)
	}
	return user
}

func createTestIngredient(t *testing.T, db *gorm.DB, ownerID uint, name string, pricePerGram float64) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{
		OwnerID:        ownerID,
		Name:           name,
		Quantity:       1000,
		Unit:           "g",
		PurchaseAmount: pricePerGram * 1000,
		PricePerGram:   pricePerGram,
	}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %q: %v", name, err)
	}
	return ingredient
}

func createTestMaterial(t *testing.T, db *gorm.DB, ownerID uint, name string, pricePerUnit float64) *models.Material {
	t.Helper()
	material := &models.Material{
		OwnerID:      ownerID,
		Name:         name,
		Quantity:     100,
		Unit:         "pc",
		PricePerUnit: pricePerUnit,
	}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("failed to create material %q: %v", name, err)
	}
	return material
}
