package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventpulse/eventpulse/internal/config"
	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/store"
	jwtutil "github.com/eventpulse/eventpulse/pkg/jwt"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles the login, registration and profile screens.
type AuthHandler struct {
	Store  *store.AuthStore
	Config *config.Config
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(s *store.AuthStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: s, Config: cfg}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginHandler handles user login.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationErrors(w, fieldErrors(err))
		return
	}

	if err := h.Store.Login(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			http.Error(w, h.Store.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	h.respondWithSession(w)
}

// RegisterHandler handles user registration.
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode registration request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationErrors(w, fieldErrors(err))
		return
	}

	if err := h.Store.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, store.ErrEmailInUse) {
			http.Error(w, h.Store.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	h.respondWithSession(w)
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter) {
	user, ok := h.Store.User()
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate session token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// LogoutHandler clears the session.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler returns the current user's profile.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Store.User()
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfileHandler merges the submitted fields into the profile.
func (h *AuthHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.WithError(err).Warn("Failed to decode profile update")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateProfile(r.Context(), patch); err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	user, ok := h.Store.User()
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
