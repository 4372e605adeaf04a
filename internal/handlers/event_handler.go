package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/eventpulse/eventpulse/internal/mocks"
	"github.com/eventpulse/eventpulse/internal/models"
	"github.com/eventpulse/eventpulse/internal/store"
	"github.com/eventpulse/eventpulse/pkg/location"
	"github.com/eventpulse/eventpulse/pkg/middleware"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const fallbackEventImage = "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4"

// EventHandler handles the event browsing, creation and bookmark
// screens.
type EventHandler struct {
	Store    *store.EventsStore
	Location location.Getter
}

// NewEventHandler creates a new instance of EventHandler.
func NewEventHandler(s *store.EventsStore, loc location.Getter) *EventHandler {
	return &EventHandler{Store: s, Location: loc}
}

type createEventRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	LocationName string `json:"locationName" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Image        string `json:"image"`
}

// GetEventsHandler lists events, optionally filtered by category and a
// search substring the way the explore screen filters them.
func (h *EventHandler) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.FetchEvents(r.Context()); err != nil {
		http.Error(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}

	events := h.Store.Events()

	category := r.URL.Query().Get("category")
	search := strings.ToLower(r.URL.Query().Get("search"))

	filtered := events[:0]
	for _, e := range events {
		if category != "" && category != "All" && e.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		filtered = append(filtered, e)
	}

	writeJSON(w, http.StatusOK, filtered)
}

// GetCategoriesHandler lists the categories shown in the category bar.
func (h *EventHandler) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mocks.Categories)
}

// CreateEventHandler validates the event form and creates the event.
func (h *EventHandler) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode event form")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	errs := map[string]string{}
	if err := validate.Struct(req); err != nil {
		errs = fieldErrors(err)
	}
	if req.Date != "" && !dateFormat.MatchString(req.Date) {
		errs["Date"] = "Date must be in YYYY-MM-DD format"
	}
	if req.Time != "" && !timeFormat.MatchString(req.Time) {
		errs["Time"] = "Time must be in HH:MM format"
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	// The create screen pins new events to the device's position.
	pos, err := h.Location.Current(r.Context())
	if err != nil {
		log.WithError(err).Warn("Could not resolve device location, using zero coordinates")
	}

	image := req.Image
	if image == "" {
		image = fallbackEventImage
	}

	draft := models.EventDraft{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location: models.EventLocation{
			Name:      req.LocationName,
			Address:   req.Address,
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		},
		Category:  req.Category,
		Image:     image,
		CreatedBy: claims.UserID,
		Attendees: []string{claims.UserID},
		Weather:   &models.Weather{Temp: 72, Condition: "Sunny", Icon: "clear-day"},
	}

	event, err := h.Store.CreateEvent(r.Context(), draft)
	if err != nil {
		log.WithError(err).Error("Failed to create event")
		http.Error(w, "Failed to create event. Please try again.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// GetEventHandler returns a single event; the detail screen navigates
// back when it is gone.
func (h *EventHandler) GetEventHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	event, ok := h.Store.GetEventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// UpdateEventHandler merges the submitted fields into the event.
func (h *EventHandler) UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.WithError(err).Warn("Failed to decode event update")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	event, err := h.Store.UpdateEvent(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// DeleteEventHandler deletes the event and its bookmark.
func (h *EventHandler) DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Store.DeleteEvent(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete event", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleBookmarkHandler flips the bookmark state of an event.
func (h *EventHandler) ToggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	h.Store.ToggleBookmark(id)
	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": h.Store.IsBookmarked(id)})
}

// GetBookmarkedEventsHandler lists the bookmarked events.
func (h *EventHandler) GetBookmarkedEventsHandler(w http.ResponseWriter, r *http.Request) {
	events := h.Store.BookmarkedEvents()
	if events == nil {
		events = []models.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}
