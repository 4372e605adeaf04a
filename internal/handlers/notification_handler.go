package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/store"
	log "github.com/sirupsen/logrus"
)

// NotificationHandler handles the notification settings screen.
type NotificationHandler struct {
	Store *store.NotificationStore
}

// NewNotificationHandler creates a new instance of NotificationHandler.
func NewNotificationHandler(s *store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{Store: s}
}

// InitializeHandler (re)initializes the notification capability.
// Initialization failure is not an HTTP error; the response simply
// reports the store as uninitialized.
func (h *NotificationHandler) InitializeHandler(w http.ResponseWriter, r *http.Request) {
	h.Store.InitializeNotifications(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"initialized": h.Store.IsInitialized(),
		"pushToken":   h.Store.PushToken(),
	})
}

// GetSettingsHandler returns the notification preferences.
func (h *NotificationHandler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Settings())
}

// UpdateSettingsHandler merges the submitted preference fields.
func (h *NotificationHandler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.NotificationSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.WithError(err).Warn("Failed to decode settings update")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Store.UpdateSettings(patch))
}
