package models

import "time"

// Message is a single chat message between two users. Messages are
// append-only; only the Read flag ever changes, and it flips
// false -> true exactly once.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation is a two-party message thread. LastMessage caches the
// most recently appended message of the thread.
type Conversation struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"` // exactly two user IDs
	LastMessage  Message  `json:"lastMessage"`
	UnreadCount  int      `json:"unreadCount"`
}

// HasParticipant reports whether the given user is part of the thread.
func (c Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not the given user,
// or "" when none can be resolved.
func (c Conversation) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

// Clone returns a deep copy of the conversation.
func (c Conversation) Clone() Conversation {
	out := c
	out.Participants = append([]string(nil), c.Participants...)
	return out
}
