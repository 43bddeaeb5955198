package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"cocina/internal/access"
	applog "cocina/internal/log"
	"cocina/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionUserIDKey        = "auth:user:id"
	sessionUserEmailKey     = "auth:user:email"
	sessionUserNameKey      = "auth:user:name"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

// ActiveSession returns true when the current request has an authenticated session.
func ActiveSession(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAuthenticatedKey) && sessionManager.GetInt(r.Context(), sessionUserIDKey) > 0
}

func currentUserID(r *http.Request) (uint, bool) {
	if sessionManager == nil {
		return 0, false
	}
	id := sessionManager.GetInt(r.Context(), sessionUserIDKey)
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// currentViewer resolves the signed-in account into the identity the access
// policy consumes. The user row is loaded fresh so plan or role changes take
// effect without re-login.
func currentViewer(r *http.Request) (access.Viewer, bool) {
	userID, ok := currentUserID(r)
	if !ok || database == nil {
		return access.Viewer{}, false
	}

	var user models.User
	if err := database.WithContext(r.Context()).First(&user, userID).Error; err != nil {
		applog.Error(r.Context(), "failed to load current user", "error", err, "user_id", userID)
		return access.Viewer{}, false
	}

	return access.Viewer{
		UserID:   user.ID,
		Email:    user.Email,
		PlanType: user.PlanType,
		Role:     user.Role,
	}, true
}

// RequireAuthentication ensures the user has an active session before
// reaching the resource.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseResourceID(raw string) (uint, bool) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
