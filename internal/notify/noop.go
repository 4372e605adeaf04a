package notify

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// NoopService is the no-platform implementation: push is unsupported,
// local notifications are logged, and listener registration returns
// inert handles.
type NoopService struct{}

func NewNoopService() *NoopService {
	return &NoopService{}
}

func (s *NoopService) Initialize(ctx context.Context) (string, error) {
	log.Info("Push notifications not supported on this platform")
	return "", nil
}

func (s *NoopService) ScheduleLocalNotification(ctx context.Context, n Notification) error {
	log.WithFields(log.Fields{
		"title": n.Title,
		"body":  n.Body,
	}).Info("Notification fallback")
	return nil
}

func (s *NoopService) SendPush(ctx context.Context, token string, n Notification) error {
	return s.ScheduleLocalNotification(ctx, n)
}

func (s *NoopService) CancelAllNotifications(ctx context.Context) error {
	return nil
}

func (s *NoopService) GetBadgeCount(ctx context.Context) (int, error) {
	return 0, nil
}

func (s *NoopService) SetBadgeCount(ctx context.Context, count int) error {
	return nil
}

func (s *NoopService) AddNotificationReceivedListener(fn func(Notification)) Subscription {
	return inertSubscription
}

func (s *NoopService) AddNotificationResponseListener(fn func(Response)) Subscription {
	return inertSubscription
}

func (s *NoopService) RequestWebNotificationPermission(ctx context.Context) (bool, error) {
	return false, nil
}
