package store

import (
	"context"
	"sync"
)

// memStore is an in-memory snapshot store for tests.
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
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
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

// eventNotifierRecorder captures event notification dispatches.
type eventNotifierRecorder struct {
	mu     sync.Mutex
	titles []string
	ids    []string
}

func (r *eventNotifierRecorder) SendEventNotification(ctx context.Context, eventTitle, eventID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, eventTitle)
	r.ids = append(r.ids, eventID)
}

// messageNotifierRecorder captures message notification dispatches.
type messageNotifierRecorder struct {
	mu            sync.Mutex
	senders       []string
	conversations []string
	recipients    []string
}

func (r *messageNotifierRecorder) SendMessageNotification(ctx context.Context, senderName, conversationID, recipientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.senders = append(r.senders, senderName)
	r.conversations = append(r.conversations, conversationID)
	r.recipients = append(r.recipients, recipientID)
}
