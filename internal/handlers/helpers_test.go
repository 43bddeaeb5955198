package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cocina/models"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers-%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "-"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
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
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// withTestDatabase swaps the package-level database for the duration of a
// test and restores the original afterwards.
func withTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db := openTestDatabase(t)
	original := database
	database = db
	t.Cleanup(func() { database = original })
	return db
}

func withTestSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()

	original := sessionManager
	sm := scs.New()
	sessionManager = sm
	t.Cleanup(func() { sessionManager = original })
	return sm
}

func createTestUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	user := &models.User{
		Email:        email,
		Name:         "Test Baker",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// withSession loads fresh session data into the request context, mirroring
// what the LoadAndSave middleware does in production.
func withSession(t *testing.T, sm *scs.SessionManager, r *http.Request) *http.Request {
	t.Helper()

	ctx, err := sm.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	return r.WithContext(ctx)
}

func authenticateRequest(t *testing.T, sm *scs.SessionManager, r *http.Request, user *models.User) *http.Request {
	t.Helper()

	r = withSession(t, sm, r)
	sm.Put(r.Context(), sessionAuthenticatedKey, true)
	sm.Put(r.Context(), sessionUserIDKey, int(user.ID))
	sm.Put(r.Context(), sessionUserEmailKey, user.Email)
	return r
}
