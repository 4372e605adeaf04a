package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eventpulse/eventpulse/internal/mocks"
	"github.com/eventpulse/eventpulse/internal/models"
	log "github.com/sirupsen/logrus"
)

// MessagesStore owns the conversation list and the message list backing
// the active conversation view. Nothing here is persisted; both lists
// are refetched from the backend stand-in.
//
// Messages carry no conversation id, so the view is filled by filtering
// the global message list down to messages whose sender and receiver
// are both participants of the requested conversation. Two
// conversations sharing the same participant pair are therefore
// indistinguishable; such duplicates are flagged in the log, not
// repaired.
type MessagesStore struct {
	mu            sync.Mutex
	conversations []models.Conversation
	messages      []models.Message
	isLoading     bool
	errMsg        string

	notifier MessageNotifier
	latency  time.Duration
	now      func() time.Time
	current  func() models.User
}

// NewMessagesStore creates the messages store. The notifier may be nil.
func NewMessagesStore(notifier MessageNotifier, latency time.Duration) *MessagesStore {
	return &MessagesStore{
		notifier: notifier,
		latency:  latency,
		now:      time.Now,
		current:  mocks.CurrentUser,
	}
}

func (s *MessagesStore) beginLoading() {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *MessagesStore) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.isLoading = false
	s.mu.Unlock()
}

func (s *MessagesStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Error returns the last operation's error message, or "".
func (s *MessagesStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Conversations returns a copy of the current conversation list.
func (s *MessagesStore) Conversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Conversation, len(s.conversations))
	for i, c := range s.conversations {
		out[i] = c.Clone()
	}
	return out
}

// Messages returns a copy of the message list behind the active
// conversation view.
func (s *MessagesStore) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// FetchConversations replaces the conversation list from the backend
// stand-in.
func (s *MessagesStore) FetchConversations(ctx context.Context) error {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to fetch conversations")
		return err
	}

	s.mu.Lock()
	s.conversations = mocks.Conversations()
	s.isLoading = false
	s.mu.Unlock()

	return nil
}

// GetConversationByID is a pure lookup over the current list.
func (s *MessagesStore) GetConversationByID(id string) (models.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conversations {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Conversation{}, false
}

// FetchMessages fills the active view with the messages belonging to
// the conversation, using the participant-pair filter described on the
// store type.
func (s *MessagesStore) FetchMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to fetch messages")
		return nil, err
	}

	var conversation *models.Conversation
	seed := mocks.Conversations()
	for i := range seed {
		if seed[i].ID == conversationID {
			conversation = &seed[i]
			break
		}
	}
	if conversation == nil {
		s.fail(ErrConversationNotFound.Error())
		return nil, ErrConversationNotFound
	}

	pairs := 0
	for _, c := range seed {
		if c.HasParticipant(conversation.Participants[0]) && c.HasParticipant(conversation.Participants[1]) {
			pairs++
		}
	}
	if pairs > 1 {
		log.WithField("conversationID", conversationID).
			Warn("Multiple conversations share the same participant pair; message attribution is ambiguous")
	}

	var filtered []models.Message
	for _, m := range mocks.Messages() {
		if conversation.HasParticipant(m.SenderID) && conversation.HasParticipant(m.ReceiverID) {
			filtered = append(filtered, m)
		}
	}

	s.mu.Lock()
	s.messages = filtered
	s.isLoading = false
	s.mu.Unlock()

	return append([]models.Message(nil), filtered...), nil
}

// SendMessage appends a new message from the current user and updates
// the owning conversation's last-message cache, then dispatches a
// message notification. State is untouched when the conversation or the
// recipient cannot be resolved.
func (s *MessagesStore) SendMessage(ctx context.Context, conversationID, text string) (models.Message, error) {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to send message")
		return models.Message{}, err
	}

	sender := s.current()

	s.mu.Lock()
	var conversation *models.Conversation
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			conversation = &s.conversations[i]
			break
		}
	}
	if conversation == nil {
		s.errMsg = ErrConversationNotFound.Error()
		s.isLoading = false
		s.mu.Unlock()
		return models.Message{}, ErrConversationNotFound
	}

	recipientID := conversation.OtherParticipant(sender.ID)
	if recipientID == "" {
		s.errMsg = ErrRecipientNotFound.Error()
		s.isLoading = false
		s.mu.Unlock()
		return models.Message{}, ErrRecipientNotFound
	}

	message := models.Message{
		ID:         fmt.Sprintf("msg-%d", s.now().UnixNano()),
		SenderID:   sender.ID,
		ReceiverID: recipientID,
		Text:       text,
		Timestamp:  s.now(),
		Read:       false,
	}

	s.messages = append(s.messages, message)
	conversation.LastMessage = message
	s.isLoading = false
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"conversationID": conversationID,
		"messageID":      message.ID,
	}).Info("Message sent")

	if s.notifier != nil {
		s.notifier.SendMessageNotification(ctx, sender.Username, conversationID, recipientID)
	}

	return message, nil
}

// MarkAsRead flips the read flag on every message addressed to the
// current user and zeroes the given conversation's unread count. The
// flip deliberately spans the whole view, mirroring the participant
// filter that filled it.
func (s *MessagesStore) MarkAsRead(ctx context.Context, conversationID string) error {
	if err := sleep(ctx, s.latency); err != nil {
		log.WithError(err).Error("Failed to mark messages as read")
		return err
	}

	me := s.current()

	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ReceiverID == me.ID && !s.messages[i].Read {
			s.messages[i].Read = true
		}
	}
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			s.conversations[i].UnreadCount = 0
		}
	}
	s.mu.Unlock()

	return nil
}

// CreateConversation returns the existing conversation for the
// participant pair when there is one; otherwise it creates the
// conversation together with its seed message in one transition and
// dispatches a message notification.
func (s *MessagesStore) CreateConversation(ctx context.Context, participantID, initialMessage string) (models.Conversation, error) {
	s.beginLoading()

	if err := sleep(ctx, s.latency); err != nil {
		s.fail("Failed to create conversation")
		return models.Conversation{}, err
	}

	me := s.current()

	s.mu.Lock()
	for _, c := range s.conversations {
		if c.HasParticipant(me.ID) && c.HasParticipant(participantID) {
			existing := c.Clone()
			s.isLoading = false
			s.mu.Unlock()
			return existing, nil
		}
	}

	message := models.Message{
		ID:         fmt.Sprintf("msg-%d", s.now().UnixNano()),
		SenderID:   me.ID,
		ReceiverID: participantID,
		Text:       initialMessage,
		Timestamp:  s.now(),
		Read:       false,
	}
	conversation := models.Conversation{
		ID:           fmt.Sprintf("conv-%d", s.now().UnixNano()),
		Participants: []string{me.ID, participantID},
		LastMessage:  message,
		UnreadCount:  0,
	}

	s.conversations = append(s.conversations, conversation)
	s.messages = append(s.messages, message)
	s.isLoading = false
	s.mu.Unlock()

	log.WithField("conversationID", conversation.ID).Info("Conversation created")

	if s.notifier != nil {
		s.notifier.SendMessageNotification(ctx, me.Username, conversation.ID, participantID)
	}

	return conversation.Clone(), nil
}
