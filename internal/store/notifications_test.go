package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/notify"
)

// fakeService records capability calls.
type fakeService struct {
	mu      sync.Mutex
	token   string
	initErr error
	badge   int

	pushes     []notify.Notification
	pushTokens []string
	locals     []notify.Notification
}

type fakeSub struct{}

func (fakeSub) Remove() {}

func (f *fakeService) Initialize(ctx context.Context) (string, error) {
	return f.token, f.initErr
}

func (f *fakeService) ScheduleLocalNotification(ctx context.Context, n notify.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locals = append(f.locals, n)
	return nil
}

func (f *fakeService) SendPush(ctx context.Context, token string, n notify.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, n)
	f.pushTokens = append(f.pushTokens, token)
	return nil
}

func (f *fakeService) CancelAllNotifications(ctx context.Context) error { return nil }

func (f *fakeService) GetBadgeCount(ctx context.Context) (int, error) { return f.badge, nil }

func (f *fakeService) SetBadgeCount(ctx context.Context, count int) error {
	f.badge = count
	return nil
}

func (f *fakeService) AddNotificationReceivedListener(fn func(notify.Notification)) notify.Subscription {
	return fakeSub{}
}

func (f *fakeService) AddNotificationResponseListener(fn func(notify.Response)) notify.Subscription {
	return fakeSub{}
}

func (f *fakeService) RequestWebNotificationPermission(ctx context.Context) (bool, error) {
	return false, nil
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestNewNotificationStore_Defaults(t *testing.T) {
	s := NewNotificationStore(newMemStore(), &fakeService{})

	settings := s.Settings()
	assert.True(t, settings.EventsEnabled)
	assert.True(t, settings.MessagesEnabled)
	assert.Equal(t, float64(10), settings.NearbyEventsRadius)
	assert.False(t, s.IsInitialized())
	assert.Empty(t, s.PushToken())
}

func TestInitializeNotifications_StoresToken(t *testing.T) {
	kv := newMemStore()
	s := NewNotificationStore(kv, &fakeService{token: "ExponentPushToken[abc]"})

	s.InitializeNotifications(context.Background())

	assert.True(t, s.IsInitialized())
	assert.Equal(t, "ExponentPushToken[abc]", s.PushToken())

	// Token survives a restart through the persisted snapshot.
	restored := NewNotificationStore(kv, &fakeService{})
	assert.Equal(t, "ExponentPushToken[abc]", restored.PushToken())
}

func TestInitializeNotifications_FailureIsCaught(t *testing.T) {
	s := NewNotificationStore(newMemStore(), &fakeService{initErr: errors.New("no permission")})

	s.InitializeNotifications(context.Background())

	assert.False(t, s.IsInitialized())
	assert.Empty(t, s.PushToken())
}

func TestUpdateSettings_MergesAndPersists(t *testing.T) {
	kv := newMemStore()
	s := NewNotificationStore(kv, &fakeService{})

	settings := s.UpdateSettings(models.NotificationSettingsPatch{
		EventsEnabled:      boolPtr(false),
		NearbyEventsRadius: floatPtr(25),
	})

	assert.False(t, settings.EventsEnabled)
	assert.True(t, settings.MessagesEnabled)
	assert.Equal(t, float64(25), settings.NearbyEventsRadius)

	restored := NewNotificationStore(kv, &fakeService{})
	assert.False(t, restored.Settings().EventsEnabled)
	assert.Equal(t, float64(25), restored.Settings().NearbyEventsRadius)
}

func TestUpdateSettings_ClampsRadius(t *testing.T) {
	s := NewNotificationStore(newMemStore(), &fakeService{})

	settings := s.UpdateSettings(models.NotificationSettingsPatch{NearbyEventsRadius: floatPtr(0)})
	assert.Equal(t, float64(MinNearbyRadiusKm), settings.NearbyEventsRadius)

	settings = s.UpdateSettings(models.NotificationSettingsPatch{NearbyEventsRadius: floatPtr(5000)})
	assert.Equal(t, float64(MaxNearbyRadiusKm), settings.NearbyEventsRadius)
}

func TestSendEventNotification_UsesPushWhenTokenPresent(t *testing.T) {
	svc := &fakeService{token: "ExponentPushToken[abc]"}
	s := NewNotificationStore(newMemStore(), svc)
	s.InitializeNotifications(context.Background())

	s.SendEventNotification(context.Background(), "Rooftop Salsa Night", "event-42")

	require.Len(t, svc.pushes, 1)
	assert.Empty(t, svc.locals)
	assert.Equal(t, "ExponentPushToken[abc]", svc.pushTokens[0])
	assert.Equal(t, notify.KindEvent, svc.pushes[0].Type)
	assert.Equal(t, "New Event Near You!", svc.pushes[0].Title)
	assert.Equal(t, "Check out: Rooftop Salsa Night", svc.pushes[0].Body)
	assert.Equal(t, "event-42", svc.pushes[0].EventID)
}

func TestSendEventNotification_FallsBackToLocal(t *testing.T) {
	svc := &fakeService{}
	s := NewNotificationStore(newMemStore(), svc)

	s.SendEventNotification(context.Background(), "Rooftop Salsa Night", "event-42")

	assert.Empty(t, svc.pushes)
	require.Len(t, svc.locals, 1)
	assert.Equal(t, "event-42", svc.locals[0].EventID)
}

func TestSendEventNotification_GatedByPreference(t *testing.T) {
	svc := &fakeService{}
	s := NewNotificationStore(newMemStore(), svc)
	s.UpdateSettings(models.NotificationSettingsPatch{EventsEnabled: boolPtr(false)})

	s.SendEventNotification(context.Background(), "Rooftop Salsa Night", "event-42")

	assert.Empty(t, svc.pushes)
	assert.Empty(t, svc.locals)
}

func TestSendMessageNotification_GatedByPreference(t *testing.T) {
	svc := &fakeService{}
	s := NewNotificationStore(newMemStore(), svc)
	s.UpdateSettings(models.NotificationSettingsPatch{MessagesEnabled: boolPtr(false)})

	s.SendMessageNotification(context.Background(), "janedoe", "c1", "1")

	assert.Empty(t, svc.pushes)
	assert.Empty(t, svc.locals)
}

func TestSendMessageNotification_Payload(t *testing.T) {
	svc := &fakeService{}
	s := NewNotificationStore(newMemStore(), svc)

	s.SendMessageNotification(context.Background(), "janedoe", "c1", "1")

	require.Len(t, svc.locals, 1)
	assert.Equal(t, notify.KindMessage, svc.locals[0].Type)
	assert.Equal(t, "New Message", svc.locals[0].Title)
	assert.Equal(t, "janedoe sent you a message", svc.locals[0].Body)
	assert.Equal(t, "c1", svc.locals[0].ConversationID)
}
