package notify

import (
	"context"
	"sync"

	"github.com/eventpulse/eventpulse/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DeviceService is the on-device notification implementation. There is
// no real push backend in this build, so pushes are logged and degrade
// to an immediate local notification, which in turn is dispatched to
// the registered received-listeners (foreground delivery).
type DeviceService struct {
	mu         sync.Mutex
	token      string
	badge      int
	nextID     int
	onReceived map[int]func(Notification)
	onResponse map[int]func(Response)

	storage storage.Store
}

// NewDeviceService creates a device notification service persisting its
// push token through the given storage.
func NewDeviceService(st storage.Store) *DeviceService {
	return &DeviceService{
		onReceived: make(map[int]func(Notification)),
		onResponse: make(map[int]func(Response)),
		storage:    st,
	}
}

// Initialize mints a push token, reusing a previously stored one when
// present.
func (s *DeviceService) Initialize(ctx context.Context) (string, error) {
	raw, err := s.storage.Get(ctx, storage.PushTokenKey)
	if err != nil {
		return "", err
	}

	token := string(raw)
	if token == "" {
		token = "ExponentPushToken[" + uuid.NewString() + "]"
		if err := s.storage.Set(ctx, storage.PushTokenKey, []byte(token)); err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	log.WithField("token", token).Info("Push token ready")
	return token, nil
}

func (s *DeviceService) ScheduleLocalNotification(ctx context.Context, n Notification) error {
	log.WithFields(log.Fields{
		"type":  n.Type,
		"title": n.Title,
	}).Info("Scheduling local notification")

	s.mu.Lock()
	listeners := make([]func(Notification), 0, len(s.onReceived))
	for _, fn := range s.onReceived {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(n)
	}
	return nil
}

// SendPush logs the outgoing push and degrades to a local notification;
// a real build would hand the message to the push gateway here.
func (s *DeviceService) SendPush(ctx context.Context, token string, n Notification) error {
	log.WithFields(log.Fields{
		"to":    token,
		"title": n.Title,
	}).Info("Would send push notification")

	return s.ScheduleLocalNotification(ctx, n)
}

func (s *DeviceService) CancelAllNotifications(ctx context.Context) error {
	log.Info("Cancelling all scheduled notifications")
	return nil
}

func (s *DeviceService) GetBadgeCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badge, nil
}

func (s *DeviceService) SetBadgeCount(ctx context.Context, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badge = count
	return nil
}

func (s *DeviceService) AddNotificationReceivedListener(fn func(Notification)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.onReceived[id] = fn

	return subscription{remove: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.onReceived, id)
	}}
}

func (s *DeviceService) AddNotificationResponseListener(fn func(Response)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.onResponse[id] = fn

	return subscription{remove: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.onResponse, id)
	}}
}

// EmitResponse feeds a notification interaction to the registered
// response listeners. Exposed so the server can simulate taps.
func (s *DeviceService) EmitResponse(r Response) {
	s.mu.Lock()
	listeners := make([]func(Response), 0, len(s.onResponse))
	for _, fn := range s.onResponse {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(r)
	}
}

func (s *DeviceService) RequestWebNotificationPermission(ctx context.Context) (bool, error) {
	return false, nil
}
