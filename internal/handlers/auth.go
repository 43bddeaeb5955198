package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	applog "cocina/internal/log"
	"cocina/models"
)

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	PlanType string `json:"plan_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PlanType string `json:"plan_type"`
	Role     string `json:"role"`
}

func accountPayload(user *models.User) accountResponse {
	return accountResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		PlanType: user.PlanType,
		Role:     user.Role,
	}
}

// Signup registers a new account and starts a session for it.
func Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		writeJSONError(w, http.StatusBadRequest, "email and a password of at least 8 characters are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		applog.Error(r.Context(), "failed to hash password", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	user := models.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		PlanType:     strings.TrimSpace(req.PlanType),
		Role:         models.RoleUser,
	}

	var existing models.User
	err = database.WithContext(r.Context()).Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		writeJSONError(w, http.StatusConflict, "an account with this email already exists")
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		applog.Error(r.Context(), "failed to check existing account", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	if err := database.WithContext(r.Context()).Create(&user).Error; err != nil {
		applog.Error(r.Context(), "failed to create account", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	if err := establishSession(r, &user); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	applog.Info(r.Context(), "account created", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, accountPayload(&user))
}

// Login authenticates an existing account.
func Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := database.WithContext(r.Context()).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeJSONError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		applog.Error(r.Context(), "failed to load account", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeJSONError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := establishSession(r, &user); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, accountPayload(&user))
}

// Logout terminates the active session.
func Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := sessionManager.Destroy(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to destroy session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func establishSession(r *http.Request, user *models.User) error {
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionAuthenticatedKey, true)
	sessionManager.Put(r.Context(), sessionUserIDKey, int(user.ID))
	sessionManager.Put(r.Context(), sessionUserEmailKey, user.Email)
	sessionManager.Put(r.Context(), sessionUserNameKey, user.Name)
	return nil
}
