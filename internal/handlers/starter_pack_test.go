package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cocina/internal/recipes"
	"cocina/models"
)

func TestStarterPackImport(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	admin := createTestUser(t, db, "templates@example.com", "correct-horse")
	admin.Role = models.RoleAdmin
	if err := db.Save(admin).Error; err != nil {
		t.Fatalf("promote template owner: %v", err)
	}
	user := createTestUser(t, db, "newcomer@example.com", "correct-horse")

	flour := &models.Ingredient{OwnerID: admin.ID, Name: "Flour", Quantity: 1000, PurchaseAmount: 1.3, PricePerGram: 0.0013}
	sugar := &models.Ingredient{OwnerID: admin.ID, Name: "Sugar", Quantity: 1000, PurchaseAmount: 1.8, PricePerGram: 0.0018}
	box := &models.Material{OwnerID: admin.ID, Name: "Cake Box", PricePerUnit: 0.45}
	for _, seed := range []interface{}{flour, sugar, box} {
		if err := db.Create(seed).Error; err != nil {
			t.Fatalf("seed template: %v", err)
		}
	}

	// The user already tracks sugar.
	if err := db.Create(&models.Ingredient{OwnerID: user.ID, Name: "sugar", Quantity: 500, PurchaseAmount: 1.25, PricePerGram: 0.0025}).Error; err != nil {
		t.Fatalf("seed user ingredient: %v", err)
	}

	body, err := json.Marshal(starterPackRequest{
		IngredientIDs: []uint{flour.ID, sugar.ID},
		MaterialIDs:   []uint{box.ID},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := authenticateRequest(t, sm, httptest.NewRequest(http.MethodPost, "/app/api/starter-pack/import", strings.NewReader(string(body))), user)
	rec := httptest.NewRecorder()
	StarterPackImport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result recipes.ImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.ImportedIngredients != 1 || result.ImportedMaterials != 1 || result.SkippedDuplicates != 1 {
		t.Fatalf("unexpected import result: %+v", result)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.StarterPackImportedAt == nil {
		t.Fatal("expected starter pack timestamp to be set")
	}
}

func TestStarterPackTemplatesListing(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	admin := createTestUser(t, db, "templates@example.com", "correct-horse")
	admin.Role = models.RoleAdmin
	if err := db.Save(admin).Error; err != nil {
		t.Fatalf("promote template owner: %v", err)
	}
	user := createTestUser(t, db, "newcomer@example.com", "correct-horse")

	if err := db.Create(&models.Ingredient{OwnerID: admin.ID, Name: "Flour", Quantity: 1000, PurchaseAmount: 1.3, PricePerGram: 0.0013}).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}
	if err := db.Create(&models.Ingredient{OwnerID: user.ID, Name: "Private Spice", Quantity: 100, PurchaseAmount: 20, PricePerGram: 0.2}).Error; err != nil {
		t.Fatalf("seed private ingredient: %v", err)
	}

	req := authenticateRequest(t, sm, httptest.NewRequest(http.MethodGet, "/app/api/starter-pack/templates", nil), user)
	rec := httptest.NewRecorder()
	StarterPackTemplates(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var templates recipes.StarterPackTemplates
	if err := json.Unmarshal(rec.Body.Bytes(), &templates); err != nil {
		t.Fatalf("failed to decode templates: %v", err)
	}
	if len(templates.Ingredients) != 1 || templates.Ingredients[0].Name != "Flour" {
		t.Fatalf("expected only admin-owned templates, got %+v", templates.Ingredients)
	}
}

func TestStarterPackImportRejectsGet(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)
	user := createTestUser(t, db, "newcomer@example.com", "correct-horse")

	req := authenticateRequest(t, sm, httptest.NewRequest(http.MethodGet, "/app/api/starter-pack/import", nil), user)
	rec := httptest.NewRecorder()
	StarterPackImport(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
