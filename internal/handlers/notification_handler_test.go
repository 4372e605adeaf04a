package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/notify"
	"github.com/eventpulse/eventpulse/internal/store"
)

func newNotificationHandler() *NotificationHandler {
	kv := newMemStore()
	return NewNotificationHandler(store.NewNotificationStore(kv, notify.NewDeviceService(kv)))
}

func TestInitializeHandler_ReportsToken(t *testing.T) {
	h := newNotificationHandler()

	req := httptest.NewRequest(http.MethodPost, "/notifications/initialize", nil)
	w := httptest.NewRecorder()
	h.InitializeHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Initialized bool   `json:"initialized"`
		PushToken   string `json:"pushToken"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Initialized)
	assert.True(t, strings.HasPrefix(resp.PushToken, "ExponentPushToken["))
}

func TestGetSettingsHandler_ReturnsDefaults(t *testing.T) {
	h := newNotificationHandler()

	req := httptest.NewRequest(http.MethodGet, "/notifications/settings", nil)
	w := httptest.NewRecorder()
	h.GetSettingsHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var settings models.NotificationSettings
	require.NoError(t, json.NewDecoder(w.Body).Decode(&settings))
	assert.True(t, settings.EventsEnabled)
	assert.Equal(t, float64(10), settings.NearbyEventsRadius)
}

func TestUpdateSettingsHandler_MergesAndClamps(t *testing.T) {
	h := newNotificationHandler()

	body := `{"messagesEnabled":false,"nearbyEventsRadius":500}`
	req := httptest.NewRequest(http.MethodPatch, "/notifications/settings", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.UpdateSettingsHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var settings models.NotificationSettings
	require.NoError(t, json.NewDecoder(w.Body).Decode(&settings))
	assert.False(t, settings.MessagesEnabled)
	assert.True(t, settings.EventsEnabled)
	assert.Equal(t, float64(100), settings.NearbyEventsRadius)
}
