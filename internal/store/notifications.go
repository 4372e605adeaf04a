package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/notify"
	"github.com/eventpulse/eventpulse/internal/storage"
	log "github.com/sirupsen/logrus"
)

// Radius bounds applied by UpdateSettings, in kilometers.
const (
	MinNearbyRadiusKm = 1
	MaxNearbyRadiusKm = 100
)

// NotificationStore owns the notification preferences and push-token
// state, and mediates between the other stores and the notification
// capability. It implements the EventNotifier and MessageNotifier
// ports, applying per-category gating before touching the capability.
type NotificationStore struct {
	mu            sync.Mutex
	settings      models.NotificationSettings
	pushToken     string
	isInitialized bool

	storage storage.Store
	service notify.Service
}

type settingsSnapshot struct {
	Settings  models.NotificationSettings `json:"settings"`
	PushToken string                      `json:"pushToken"`
}

// NewNotificationStore creates the notification store with default
// settings and restores the persisted snapshot, if any.
func NewNotificationStore(st storage.Store, service notify.Service) *NotificationStore {
	s := &NotificationStore{
		settings: models.DefaultNotificationSettings(),
		storage:  st,
		service:  service,
	}
	s.restore()
	return s
}

func (s *NotificationStore) restore() {
	raw, err := s.storage.Get(context.Background(), storage.SettingsKey)
	if err != nil {
		log.WithError(err).Warn("Failed to load notification settings")
		return
	}
	if raw == nil {
		return
	}

	var snap settingsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.WithError(err).Warn("Failed to decode notification settings")
		return
	}
	s.settings = snap.Settings
	s.pushToken = snap.PushToken
}

func (s *NotificationStore) persistLocked() {
	raw, err := json.Marshal(settingsSnapshot{Settings: s.settings, PushToken: s.pushToken})
	if err != nil {
		log.WithError(err).Warn("Failed to encode notification settings")
		return
	}
	if err := s.storage.Set(context.Background(), storage.SettingsKey, raw); err != nil {
		log.WithError(err).Warn("Failed to persist notification settings")
	}
}

// Settings returns the current preferences.
func (s *NotificationStore) Settings() models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// PushToken returns the stored push token, or "" when none was issued.
func (s *NotificationStore) PushToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushToken
}

func (s *NotificationStore) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isInitialized
}

// InitializeNotifications asks the capability for a push token. Failure
// is caught and logged; the store simply stays uninitialized and the
// caller may invoke it again.
func (s *NotificationStore) InitializeNotifications(ctx context.Context) {
	token, err := s.service.Initialize(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to initialize notifications")
		s.mu.Lock()
		s.isInitialized = false
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.pushToken = token
	s.isInitialized = true
	s.persistLocked()
	s.mu.Unlock()
}

// UpdateSettings merges the patch into the preferences and persists
// them. The nearby radius is clamped into [MinNearbyRadiusKm,
// MaxNearbyRadiusKm].
func (s *NotificationStore) UpdateSettings(patch models.NotificationSettingsPatch) models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.settings)

	if s.settings.NearbyEventsRadius < MinNearbyRadiusKm {
		log.WithField("radius", s.settings.NearbyEventsRadius).Warn("Nearby radius below minimum, clamping")
		s.settings.NearbyEventsRadius = MinNearbyRadiusKm
	}
	if s.settings.NearbyEventsRadius > MaxNearbyRadiusKm {
		log.WithField("radius", s.settings.NearbyEventsRadius).Warn("Nearby radius above maximum, clamping")
		s.settings.NearbyEventsRadius = MaxNearbyRadiusKm
	}

	s.persistLocked()
	return s.settings
}

// SendEventNotification announces a new event. It is a no-op when event
// notifications are disabled; capability errors are logged, never
// surfaced to the caller.
func (s *NotificationStore) SendEventNotification(ctx context.Context, eventTitle, eventID string) {
	s.mu.Lock()
	enabled := s.settings.EventsEnabled
	token := s.pushToken
	s.mu.Unlock()

	if !enabled {
		return
	}

	n := notify.Notification{
		Type:    notify.KindEvent,
		Title:   "New Event Near You!",
		Body:    fmt.Sprintf("Check out: %s", eventTitle),
		EventID: eventID,
	}

	var err error
	if token != "" {
		err = s.service.SendPush(ctx, token, n)
	} else {
		err = s.service.ScheduleLocalNotification(ctx, n)
	}
	if err != nil {
		log.WithError(err).Error("Failed to send event notification")
	}
}

// SendMessageNotification announces a new message to its recipient. It
// is a no-op when message notifications are disabled; capability errors
// are logged, never surfaced to the caller.
func (s *NotificationStore) SendMessageNotification(ctx context.Context, senderName, conversationID, recipientID string) {
	s.mu.Lock()
	enabled := s.settings.MessagesEnabled
	token := s.pushToken
	s.mu.Unlock()

	if !enabled {
		return
	}

	n := notify.Notification{
		Type:           notify.KindMessage,
		Title:          "New Message",
		Body:           fmt.Sprintf("%s sent you a message", senderName),
		ConversationID: conversationID,
	}

	// A real backend would resolve the recipient's token; the demo
	// delivers through the local device token.
	var err error
	if token != "" {
		err = s.service.SendPush(ctx, token, n)
	} else {
		err = s.service.ScheduleLocalNotification(ctx, n)
	}
	if err != nil {
		log.WithFields(log.Fields{
			"recipientID": recipientID,
			"error":       err,
		}).Error("Failed to send message notification")
	}
}
