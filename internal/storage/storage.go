// Package storage provides the key-value collaborator the state
// containers persist their snapshots through. Each store serializes its
// snapshot as a JSON blob under its own key; no multi-key transaction
// discipline is needed.
package storage

import "context"

// Snapshot keys used by the stores and the notification capability.
const (
	AuthKey      = "auth-storage"
	EventsKey    = "events-storage"
	SettingsKey  = "notification-settings"
	PushTokenKey = "push-token"
)

// Store is the opaque key-value persistence boundary.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
