package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cocina/models"
)

func TestSignupCreatesAccountAndSession(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	body := `{"email":"New.Baker@Example.com","name":"New Baker","password":"letmein-please","plan_type":"Pro"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req = withSession(t, sm, req)
	rec := httptest.NewRecorder()

	Signup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var payload accountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Email != "new.baker@example.com" {
		t.Fatalf("email not normalized: %q", payload.Email)
	}
	if payload.PlanType != "Pro" || payload.Role != models.RoleUser {
		t.Fatalf("unexpected account payload: %+v", payload)
	}

	var stored models.User
	if err := db.Where("email = ?", "new.baker@example.com").First(&stored).Error; err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.PasswordHash == "letmein-please" || stored.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	if !sm.GetBool(req.Context(), sessionAuthenticatedKey) {
		t.Fatal("expected session to be authenticated after signup")
	}
	if got := sm.GetInt(req.Context(), sessionUserIDKey); got != int(stored.ID) {
		t.Fatalf("session user id = %d, want %d", got, stored.ID)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	createTestUser(t, db, "taken@example.com", "original-pass")

	body := `{"email":"Taken@Example.com","password":"another-pass"}`
	req := withSession(t, sm, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	Signup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	withTestDatabase(t)
	sm := withTestSessionManager(t)

	body := `{"email":"short@example.com","password":"tiny"}`
	req := withSession(t, sm, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLogin(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	user := createTestUser(t, db, "baker@example.com", "correct-horse")

	t.Run("valid credentials", func(t *testing.T) {
		body := `{"email":"Baker@Example.com","password":"correct-horse"}`
		req := withSession(t, sm, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))
		rec := httptest.NewRecorder()

		Login(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
		}
		if got := sm.GetInt(req.Context(), sessionUserIDKey); got != int(user.ID) {
			t.Fatalf("session user id = %d, want %d", got, user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"baker@example.com","password":"wrong"}`
		req := withSession(t, sm, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))
		rec := httptest.NewRecorder()

		Login(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		body := `{"email":"nobody@example.com","password":"whatever"}`
		req := withSession(t, sm, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))
		rec := httptest.NewRecorder()

		Login(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}

func TestLogoutDestroysSession(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	user := createTestUser(t, db, "baker@example.com", "correct-horse")

	req := authenticateRequest(t, sm, httptest.NewRequest(http.MethodPost, "/logout", nil), user)
	rec := httptest.NewRecorder()

	Logout(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if ActiveSession(req) {
		t.Fatal("session should be gone after logout")
	}
}

func TestRequireAuthentication(t *testing.T) {
	db := withTestDatabase(t)
	sm := withTestSessionManager(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	protected := RequireAuthentication(next)

	req := withSession(t, sm, httptest.NewRequest(http.MethodGet, "/app/api/ingredients", nil))
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	user := createTestUser(t, db, "baker@example.com", "correct-horse")
	req = authenticateRequest(t, sm, httptest.NewRequest(http.MethodGet, "/app/api/ingredients", nil), user)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("authenticated status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
