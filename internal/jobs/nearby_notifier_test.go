package jobs

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/notify"
	"github.com/eventpulse/eventpulse/internal/store"
	"github.com/eventpulse/eventpulse/pkg/location"
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

func setupScan(t *testing.T) (*NearbyEventsNotifier, *store.NotificationStore, *[]notify.Notification) {
	t.Helper()
	kv := newMemStore()
	service := notify.NewDeviceService(kv)

	var delivered []notify.Notification
	service.AddNotificationReceivedListener(func(n notify.Notification) {
		delivered = append(delivered, n)
	})

	notifications := store.NewNotificationStore(kv, service)
	events := store.NewEventsStore(kv, notifications, 0)
	require.NoError(t, events.FetchEvents(context.Background()))

	loc := location.Static{Position: location.Position{Latitude: 37.7749, Longitude: -122.4194}}
	return NewNearbyEventsNotifier(events, notifications, loc), notifications, &delivered
}

func TestRunScan_NotifiesEventsInsideRadius(t *testing.T) {
	notifier, _, delivered := setupScan(t)

	require.NoError(t, notifier.RunScan(context.Background()))

	// With the default 10 km radius the four San Francisco events are in
	// range and the San Jose trail run is not.
	assert.Len(t, *delivered, 4)
	for _, n := range *delivered {
		assert.Equal(t, notify.KindEvent, n.Type)
		assert.NotEqual(t, "e5", n.EventID)
	}
}

func TestRunScan_DoesNotRepeatAnnouncements(t *testing.T) {
	notifier, _, delivered := setupScan(t)
	ctx := context.Background()

	require.NoError(t, notifier.RunScan(ctx))
	first := len(*delivered)

	require.NoError(t, notifier.RunScan(ctx))
	assert.Equal(t, first, len(*delivered))
}

func TestRunScan_WiderRadiusPicksUpFarEvents(t *testing.T) {
	notifier, notifications, delivered := setupScan(t)
	ctx := context.Background()

	require.NoError(t, notifier.RunScan(ctx))
	first := len(*delivered)

	radius := float64(100)
	notifications.UpdateSettings(models.NotificationSettingsPatch{NearbyEventsRadius: &radius})

	require.NoError(t, notifier.RunScan(ctx))
	assert.Equal(t, first+1, len(*delivered))
}

func TestRunScan_LocationFailure_ReturnsError(t *testing.T) {
	notifier, _, delivered := setupScan(t)
	notifier.Location = location.Denied{}

	err := notifier.RunScan(context.Background())
	require.ErrorIs(t, err, location.ErrPermissionDenied)
	assert.Empty(t, *delivered)
}
