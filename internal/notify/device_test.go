package notify

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpulse/eventpulse/internal/storage"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}

func TestInitialize_MintsAndPersistsToken(t *testing.T) {
	kv := newMemStore()
	s := NewDeviceService(kv)
	ctx := context.Background()

	token, err := s.Initialize(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "ExponentPushToken["))

	stored, err := kv.Get(ctx, storage.PushTokenKey)
	require.NoError(t, err)
	assert.Equal(t, token, string(stored))
}

func TestInitialize_ReusesStoredToken(t *testing.T) {
	kv := newMemStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, storage.PushTokenKey, []byte("ExponentPushToken[existing]")))

	s := NewDeviceService(kv)
	token, err := s.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[existing]", token)
}

func TestScheduleLocalNotification_DispatchesToListeners(t *testing.T) {
	s := NewDeviceService(newMemStore())

	var received []Notification
	sub := s.AddNotificationReceivedListener(func(n Notification) {
		received = append(received, n)
	})

	n := Notification{Type: KindEvent, Title: "New Event Near You!"}
	require.NoError(t, s.ScheduleLocalNotification(context.Background(), n))
	require.Len(t, received, 1)
	assert.Equal(t, "New Event Near You!", received[0].Title)

	sub.Remove()
	require.NoError(t, s.ScheduleLocalNotification(context.Background(), n))
	assert.Len(t, received, 1)
}

func TestSendPush_DegradesToLocal(t *testing.T) {
	s := NewDeviceService(newMemStore())

	var received []Notification
	s.AddNotificationReceivedListener(func(n Notification) {
		received = append(received, n)
	})

	n := Notification{Type: KindMessage, Title: "New Message"}
	require.NoError(t, s.SendPush(context.Background(), "ExponentPushToken[abc]", n))
	require.Len(t, received, 1)
	assert.Equal(t, KindMessage, received[0].Type)
}

func TestBadgeCount_RoundTrips(t *testing.T) {
	s := NewDeviceService(newMemStore())
	ctx := context.Background()

	count, err := s.GetBadgeCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, s.SetBadgeCount(ctx, 3))
	count, err = s.GetBadgeCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCancelAllNotifications(t *testing.T) {
	s := NewDeviceService(newMemStore())
	require.NoError(t, s.CancelAllNotifications(context.Background()))
}

func TestEmitResponse_ReachesResponseListeners(t *testing.T) {
	s := NewDeviceService(newMemStore())

	var responses []Response
	s.AddNotificationResponseListener(func(r Response) {
		responses = append(responses, r)
	})

	s.EmitResponse(Response{Notification: Notification{EventID: "e1"}})
	require.Len(t, responses, 1)
	assert.Equal(t, "e1", responses[0].Notification.EventID)
}

func TestNoopService_HasNoPushSupport(t *testing.T) {
	s := NewNoopService()
	ctx := context.Background()

	token, err := s.Initialize(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.ScheduleLocalNotification(ctx, Notification{Title: "x"}))

	ok, err := s.RequestWebNotificationPermission(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
