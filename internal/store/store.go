// Package store holds the application's state containers. Each store
// owns one slice of client state, guards it with a mutex so every
// committed mutation is a single atomic transition, and persists its
// snapshot through the storage collaborator. Operations that simulate a
// backend call suspend for a configurable latency before mutating.
package store

import (
	"context"
	"errors"
	"time"
)

// Contractual failures surfaced by store operations.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailInUse           = errors.New("email already in use")
)

// EventNotifier is the port the events store dispatches through after a
// create commits. Implementations must never fail the caller.
type EventNotifier interface {
	SendEventNotification(ctx context.Context, eventTitle, eventID string)
}

// MessageNotifier is the port the messages store dispatches through
// after a send or conversation create commits.
type MessageNotifier interface {
	SendMessageNotification(ctx context.Context, senderName, conversationID, recipientID string)
}

// sleep waits out the simulated backend latency. Cancellation is
// honored only here, at the suspend point; a transition that has begun
// always completes.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
