package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/eventpulse/eventpulse/internal/mocks"
	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/storage"
	log "github.com/sirupsen/logrus"
)

// AuthStore owns the current-user session. The credential check is a
// demo stub: any email containing "error" fails, everything else
// resolves to the seed user.
type AuthStore struct {
	mu              sync.Mutex
	user            *models.User
	isAuthenticated bool
	isLoading       bool
	errMsg          string

	storage storage.Store
	latency time.Duration
}

type authSnapshot struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// NewAuthStore creates the auth store and restores its persisted
// session, if any.
func NewAuthStore(st storage.Store, latency time.Duration) *AuthStore {
	s := &AuthStore{storage: st, latency: latency}
	s.restore()
	return s
}

func (s *AuthStore) restore() {
	raw, err := s.storage.Get(context.Background(), storage.AuthKey)
	if err != nil {
		log.WithError(err).Warn("Failed to load auth snapshot")
		return
	}
	if raw == nil {
		return
	}

	var snap authSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.WithError(err).Warn("Failed to decode auth snapshot")
		return
	}
	s.user = snap.User
	s.isAuthenticated = snap.IsAuthenticated
}

func (s *AuthStore) persistLocked() {
	raw, err := json.Marshal(authSnapshot{User: s.user, IsAuthenticated: s.isAuthenticated})
	if err != nil {
		log.WithError(err).Warn("Failed to encode auth snapshot")
		return
	}
	if err := s.storage.Set(context.Background(), storage.AuthKey, raw); err != nil {
		log.WithError(err).Warn("Failed to persist auth snapshot")
	}
}

// User returns a copy of the current user, if any.
func (s *AuthStore) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	u := *s.user
	if s.user.Location != nil {
		loc := *s.user.Location
		u.Location = &loc
	}
	return u, true
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

func (s *AuthStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Error returns the last operation's error message, or "".
func (s *AuthStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *AuthStore) beginLoading() {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *AuthStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.isLoading = false
	s.mu.Unlock()
}

// Login resolves the demo user after the simulated backend delay.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Login failed")
		return err
	}

	// Demo failure trigger standing in for a rejected credential check.
	if strings.Contains(email, "error") {
		log.WithField("email", email).Warn("Login rejected")
		s.fail(ErrInvalidCredentials.Error())
		return ErrInvalidCredentials
	}

	user := mocks.CurrentUser()

	s.mu.Lock()
	s.user = &user
	s.isAuthenticated = true
	s.isLoading = false
	s.persistLocked()
	s.mu.Unlock()

	log.WithField("userID", user.ID).Info("User logged in")
	return nil
}

// Register creates a session for a new account built from the demo
// user's defaults with the supplied username and email.
func (s *AuthStore) Register(ctx context.Context, username, email, password string) error {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Registration failed")
		return err
	}

	if strings.Contains(email, "error") {
		log.WithField("email", email).Warn("Registration rejected")
		s.fail(ErrEmailInUse.Error())
		return ErrEmailInUse
	}

	user := mocks.CurrentUser()
	user.Username = username
	user.Email = email

	s.mu.Lock()
	s.user = &user
	s.isAuthenticated = true
	s.isLoading = false
	s.persistLocked()
	s.mu.Unlock()

	log.WithField("userID", user.ID).Info("User registered")
	return nil
}

// Logout clears the session synchronously. No backend call is made.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.isAuthenticated = false
	s.persistLocked()
	s.mu.Unlock()

	log.Info("User logged out")
}

// UpdateProfile merges the patch into the current user after the
// simulated delay. Without a session it is a no-op.
func (s *AuthStore) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Profile update failed")
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		patch.Apply(s.user)
		s.persistLocked()
	}
	s.isLoading = false
	s.mu.Unlock()

	return nil
}
