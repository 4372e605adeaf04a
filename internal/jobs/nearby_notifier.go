package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventpulse/eventpulse/internal/store"
	"github.com/eventpulse/eventpulse/pkg/location"
	log "github.com/sirupsen/logrus"
)

// NearbyEventsNotifier periodically looks for events within the
// configured radius of the device and announces each one once per
// session through the notification store.
type NearbyEventsNotifier struct {
	Events        *store.EventsStore
	Notifications *store.NotificationStore
	Location      location.Getter

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewNearbyEventsNotifier creates a new instance of NearbyEventsNotifier.
func NewNearbyEventsNotifier(events *store.EventsStore, notifications *store.NotificationStore, loc location.Getter) *NearbyEventsNotifier {
	return &NearbyEventsNotifier{
		Events:        events,
		Notifications: notifications,
		Location:      loc,
		notified:      make(map[string]struct{}),
	}
}

// RunScan checks every known event against the nearby radius and sends
// an event notification for the ones inside it.
func (n *NearbyEventsNotifier) RunScan(ctx context.Context) error {
	pos, err := n.Location.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve current location: %w", err)
	}

	radius := n.Notifications.Settings().NearbyEventsRadius

	count := 0
	for _, event := range n.Events.Events() {
		dist := location.Distance(pos.Latitude, pos.Longitude, event.Location.Latitude, event.Location.Longitude)
		if dist > radius {
			continue
		}

		n.mu.Lock()
		if _, seen := n.notified[event.ID]; seen {
			n.mu.Unlock()
			continue
		}
		n.notified[event.ID] = struct{}{}
		n.mu.Unlock()

		n.Notifications.SendEventNotification(ctx, event.Title, event.ID)
		count++
	}

	log.WithFields(log.Fields{
		"radiusKm": radius,
		"notified": count,
	}).Info("Nearby events scan completed")
	return nil
}
