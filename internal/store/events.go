package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/eventpulse/eventpulse/internal/mocks"
	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/storage"
	log "github.com/sirupsen/logrus"
)

// EventsStore owns the event collection and the bookmark set. Only the
// bookmark set is persisted; the event collection is refetched from the
// backend stand-in.
type EventsStore struct {
	mu         sync.Mutex
	events     []models.Event
	bookmarked []string
	isLoading  bool
	errMsg     string

	storage  storage.Store
	notifier EventNotifier
	latency  time.Duration
	now      func() time.Time
}

type eventsSnapshot struct {
	BookmarkedEvents []string `json:"bookmarkedEvents"`
}

// NewEventsStore creates the events store and restores the persisted
// bookmark set. The notifier may be nil, in which case creates commit
// without dispatching a notification.
func NewEventsStore(st storage.Store, notifier EventNotifier, latency time.Duration) *EventsStore {
	s := &EventsStore{
		storage:  st,
		notifier: notifier,
		latency:  latency,
		now:      time.Now,
	}
	s.restore()
	return s
}

func (s *EventsStore) restore() {
	raw, err := s.storage.Get(context.Background(), storage.EventsKey)
	if err != nil {
		log.WithError(err).Warn("Failed to load events snapshot")
		return
	}
	if raw == nil {
		return
	}

	var snap eventsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.WithError(err).Warn("Failed to decode events snapshot")
		return
	}
	s.bookmarked = snap.BookmarkedEvents
}

func (s *EventsStore) persistLocked() {
	raw, err := json.Marshal(eventsSnapshot{BookmarkedEvents: s.bookmarked})
	if err != nil {
		log.WithError(err).Warn("Failed to encode events snapshot")
		return
	}
	if err := s.storage.Set(context.Background(), storage.EventsKey, raw); err != nil {
		log.WithError(err).Warn("Failed to persist events snapshot")
	}
}

func (s *EventsStore) beginLoading() {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *EventsStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.isLoading = false
	s.mu.Unlock()
}

func (s *EventsStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Error returns the last operation's error message, or "".
func (s *EventsStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Events returns a copy of the current event collection.
func (s *EventsStore) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, len(s.events))
	for i, e := range s.events {
		out[i] = e.Clone()
	}
	return out
}

// FetchEvents replaces the whole collection with the backend stand-in's
// data. No incremental merge is attempted.
func (s *EventsStore) FetchEvents(ctx context.Context) error {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to fetch events")
		return err
	}

	s.mu.Lock()
	s.events = mocks.Events()
	s.isLoading = false
	s.mu.Unlock()

	log.WithField("count", len(mocks.Events())).Debug("Events fetched")
	return nil
}

// GetEventByID is a pure lookup; ok is false when the id is absent and
// callers must handle the absence.
func (s *EventsStore) GetEventByID(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.Event{}, false
}

// CreateEvent assigns an id and creation time, appends the event, and
// dispatches an event notification after the commit. The notification
// outcome never affects the returned event.
func (s *EventsStore) CreateEvent(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to create event")
		return models.Event{}, err
	}

	event := models.Event{
		ID:          fmt.Sprintf("event-%d", s.now().UnixNano()),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		Time:        draft.Time,
		Location:    draft.Location,
		Category:    draft.Category,
		Image:       draft.Image,
		CreatedBy:   draft.CreatedBy,
		Attendees:   append([]string(nil), draft.Attendees...),
		Weather:     draft.Weather,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	s.isLoading = false
	s.mu.Unlock()

	log.WithField("eventID", event.ID).Info("Event created")

	if s.notifier != nil {
		s.notifier.SendEventNotification(ctx, event.Title, event.ID)
	}

	return event.Clone(), nil
}

// UpdateEvent merges the patch into the matching event.
func (s *EventsStore) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (models.Event, error) {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to update event")
		return models.Event{}, err
	}

	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == id {
			patch.Apply(&s.events[i])
			updated := s.events[i].Clone()
			s.isLoading = false
			s.mu.Unlock()
			return updated, nil
		}
	}
	s.errMsg = ErrEventNotFound.Error()
	s.isLoading = false
	s.mu.Unlock()

	log.WithField("eventID", id).Warn("Update of unknown event")
	return models.Event{}, ErrEventNotFound
}

// DeleteEvent removes the event and prunes it from the bookmark set in
// a single state transition, so no bookmark can outlive its event.
func (s *EventsStore) DeleteEvent(ctx context.Context, id string) error {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to delete event")
		return err
	}

	s.mu.Lock()
	events := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			events = append(events, e)
		}
	}
	s.events = events

	bookmarked := s.bookmarked[:0]
	for _, bid := range s.bookmarked {
		if bid != id {
			bookmarked = append(bookmarked, bid)
		}
	}
	s.bookmarked = bookmarked

	s.persistLocked()
	s.isLoading = false
	s.mu.Unlock()

	log.WithField("eventID", id).Info("Event deleted")
	return nil
}

// ToggleBookmark flips the bookmark membership for the given event id.
func (s *EventsStore) ToggleBookmark(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.bookmarked {
		if id == eventID {
			s.bookmarked = append(s.bookmarked[:i], s.bookmarked[i+1:]...)
			s.persistLocked()
			return
		}
	}
	s.bookmarked = append(s.bookmarked, eventID)
	s.persistLocked()
}

// IsBookmarked reports bookmark membership for the given event id.
func (s *EventsStore) IsBookmarked(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.bookmarked {
		if id == eventID {
			return true
		}
	}
	return false
}

// BookmarkedEvents projects the bookmark set onto the current event
// collection.
func (s *EventsStore) BookmarkedEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]struct{}, len(s.bookmarked))
	for _, id := range s.bookmarked {
		set[id] = struct{}{}
	}

	var out []models.Event
	for _, e := range s.events {
		if _, ok := set[e.ID]; ok {
			out = append(out, e.Clone())
		}
	}
	return out
}
