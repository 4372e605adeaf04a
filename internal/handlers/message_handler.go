package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventpulse/eventpulse/internal/mocks"
	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/notify"
	"github.com/eventpulse/eventpulse/internal/store"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// MessageHandler handles the conversation list and chat screens.
type MessageHandler struct {
	Store   *store.MessagesStore
	Service notify.Service
}

// NewMessageHandler creates a new instance of MessageHandler.
func NewMessageHandler(s *store.MessagesStore, service notify.Service) *MessageHandler {
	return &MessageHandler{Store: s, Service: service}
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type createConversationRequest struct {
	ParticipantID string `json:"participantId" validate:"required"`
	Message       string `json:"message" validate:"required"`
}

// GetContactsHandler lists the users a conversation can be started
// with, excluding the current user.
func (h *MessageHandler) GetContactsHandler(w http.ResponseWriter, r *http.Request) {
	me := mocks.CurrentUser()

	contacts := []models.User{}
	for _, u := range mocks.Users() {
		if u.ID != me.ID {
			contacts = append(contacts, u)
		}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// GetConversationsHandler lists the user's conversations.
func (h *MessageHandler) GetConversationsHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.FetchConversations(r.Context()); err != nil {
		http.Error(w, "Failed to fetch conversations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Conversations())
}

// GetMessagesHandler fills and returns the chat view for a
// conversation.
func (h *MessageHandler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	messages, err := h.Store.FetchMessages(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrConversationNotFound) {
			http.Error(w, "Conversation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch messages", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// SendMessageHandler appends a message to a conversation.
func (h *MessageHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode message")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationErrors(w, fieldErrors(err))
		return
	}

	message, err := h.Store.SendMessage(r.Context(), id, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConversationNotFound):
			http.Error(w, "Conversation not found", http.StatusNotFound)
		case errors.Is(err, store.ErrRecipientNotFound):
			http.Error(w, "Recipient not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to send message", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

// MarkAsReadHandler marks the conversation as read and clears the app
// badge, the way opening a chat screen does.
func (h *MessageHandler) MarkAsReadHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Store.MarkAsRead(r.Context(), id); err != nil {
		http.Error(w, "Failed to mark messages as read", http.StatusInternalServerError)
		return
	}

	if err := h.Service.SetBadgeCount(r.Context(), 0); err != nil {
		log.WithError(err).Error("Failed to clear badge count")
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateConversationHandler starts (or returns) the conversation with
// another user.
func (h *MessageHandler) CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode conversation request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationErrors(w, fieldErrors(err))
		return
	}

	conversation, err := h.Store.CreateConversation(r.Context(), req.ParticipantID, req.Message)
	if err != nil {
		http.Error(w, "Failed to create conversation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, conversation)
}
