package mocks

import (
	"time"

	"github.com/eventpulse/eventpulse/internal/models"
)

var messages = []models.Message{
	{
		ID:         "m1",
		SenderID:   "2",
		ReceiverID: "1",
		Text:       "Hey! Are you going to the Tech Startup Mixer next week?",
		Timestamp:  time.Date(2025, time.May, 28, 14, 30, 0, 0, time.UTC),
		Read:       true,
	},
	{
		ID:         "m2",
		SenderID:   "1",
		ReceiverID: "2",
		Text:       "Yes, I'm planning to attend. Are you presenting anything?",
		Timestamp:  time.Date(2025, time.May, 28, 14, 35, 0, 0, time.UTC),
		Read:       true,
	},
	{
		ID:         "m3",
		SenderID:   "2",
		ReceiverID: "1",
		Text:       "No presentation this time, just networking. Let's meet up there!",
		Timestamp:  time.Date(2025, time.May, 28, 14, 40, 0, 0, time.UTC),
		Read:       true,
	},
	{
		ID:         "m4",
		SenderID:   "3",
		ReceiverID: "1",
		Text:       "Don't forget about the Farmers Market this weekend. I've got a booth set up!",
		Timestamp:  time.Date(2025, time.May, 29, 9, 15, 0, 0, time.UTC),
		Read:       false,
	},
	{
		ID:         "m5",
		SenderID:   "1",
		ReceiverID: "3",
		Text:       "I'll definitely stop by! What are you selling this time?",
		Timestamp:  time.Date(2025, time.May, 29, 9, 20, 0, 0, time.UTC),
		Read:       true,
	},
	{
		ID:         "m6",
		SenderID:   "4",
		ReceiverID: "1",
		Text:       "Thanks for RSVPing to the Art Gallery Opening. Did you see the featured artists list?",
		Timestamp:  time.Date(2025, time.May, 30, 10, 5, 0, 0, time.UTC),
		Read:       false,
	},
}

var conversations = []models.Conversation{
	{
		ID:           "c1",
		Participants: []string{"1", "2"},
		LastMessage:  messages[2],
		UnreadCount:  0,
	},
	{
		ID:           "c2",
		Participants: []string{"1", "3"},
		LastMessage:  messages[4],
		UnreadCount:  1,
	},
	{
		ID:           "c3",
		Participants: []string{"1", "4"},
		LastMessage:  messages[5],
		UnreadCount:  1,
	},
}

// Messages returns a fresh copy of the global seed message list.
func Messages() []models.Message {
	return append([]models.Message(nil), messages...)
}

// Conversations returns a fresh copy of the seed conversation list.
func Conversations() []models.Conversation {
	out := make([]models.Conversation, len(conversations))
	for i, c := range conversations {
		out[i] = c.Clone()
	}
	return out
}
