package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpulse/eventpulse/internal/config"
	"github.com/eventpulse/eventpulse/internal/store"
	jwtutil "github.com/eventpulse/eventpulse/pkg/jwt"
)

func newAuthHandler() *AuthHandler {
	cfg := &config.Config{JWTSecret: "test-secret", TokenExpiry: time.Hour}
	return NewAuthHandler(store.NewAuthStore(newMemStore(), 0), cfg)
}

func TestLoginHandler_Success(t *testing.T) {
	h := newAuthHandler()

	body := `{"email":"john@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.LoginHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "johndoe", resp.User.Username)

	claims, err := jwtutil.ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h := newAuthHandler()

	body := `{"email":"error@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.LoginHandler(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestLoginHandler_MissingFields(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"john@example.com"}`))
	w := httptest.NewRecorder()

	h.LoginHandler(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Password is required", resp.Errors["Password"])
}

func TestLoginHandler_BadEmailFormat(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email","password":"pw"}`))
	w := httptest.NewRecorder()

	h.LoginHandler(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")
}

func TestRegisterHandler_Success(t *testing.T) {
	h := newAuthHandler()

	body := `{"username":"newuser","email":"new@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.RegisterHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"newuser"`)
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	h := newAuthHandler()

	body := `{"username":"newuser","email":"new@example.com","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.RegisterHandler(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Password is too short")
}

func TestRegisterHandler_EmailInUse(t *testing.T) {
	h := newAuthHandler()

	body := `{"username":"newuser","email":"error@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.RegisterHandler(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}

func TestLogoutHandler_ClearsSession(t *testing.T) {
	h := newAuthHandler()

	login := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"john@example.com","password":"pw123"}`))
	h.LoginHandler(httptest.NewRecorder(), login)
	require.True(t, h.Store.IsAuthenticated())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	h.LogoutHandler(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, h.Store.IsAuthenticated())
}
