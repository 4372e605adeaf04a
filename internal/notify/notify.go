// Package notify wraps the platform push/local-notification APIs behind
// a narrow capability interface. Failures at this boundary are expected
// to be caught and logged by callers, never propagated into a state
// transition.
package notify

import "context"

// Kind classifies a notification payload.
type Kind string

const (
	KindEvent   Kind = "event"
	KindMessage Kind = "message"
)

// Notification is the payload handed to the platform notification APIs.
type Notification struct {
	Type           Kind   `json:"type"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	EventID        string `json:"eventId,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
}

// Response represents a user interaction with a delivered notification.
type Response struct {
	Notification Notification
}

// Subscription is a removable listener registration.
type Subscription interface {
	Remove()
}

// Service is the notification capability surface consumed by the
// notification store.
type Service interface {
	// Initialize requests permissions and fetches a push token. An empty
	// token with a nil error means the platform has no push support and
	// callers should fall back to local notifications.
	Initialize(ctx context.Context) (string, error)

	// ScheduleLocalNotification shows a notification immediately.
	ScheduleLocalNotification(ctx context.Context, n Notification) error

	// SendPush delivers a notification to the device behind token.
	SendPush(ctx context.Context, token string, n Notification) error

	CancelAllNotifications(ctx context.Context) error
	GetBadgeCount(ctx context.Context) (int, error)
	SetBadgeCount(ctx context.Context, count int) error

	AddNotificationReceivedListener(fn func(Notification)) Subscription
	AddNotificationResponseListener(fn func(Response)) Subscription

	// RequestWebNotificationPermission asks the browser for notification
	// permission. Non-web builds report false.
	RequestWebNotificationPermission(ctx context.Context) (bool, error)
}

type subscription struct {
	remove func()
}

func (s subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

// inertSubscription is the no-op handle returned where listener
// registration is unsupported.
var inertSubscription Subscription = subscription{}
