package models

import "time"

// EventLocation is the venue of an event.
type EventLocation struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Weather is the forecast snapshot attached to an event listing.
type Weather struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon,omitempty"`
}

// Event is a community event listed in the app.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Time        string        `json:"time"` // HH:MM
	Location    EventLocation `json:"location"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	CreatedBy   string        `json:"createdBy"`
	Attendees   []string      `json:"attendees"`
	Weather     *Weather      `json:"weather,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	out := e
	out.Attendees = append([]string(nil), e.Attendees...)
	if e.Weather != nil {
		w := *e.Weather
		out.Weather = &w
	}
	return out
}

// EventDraft is the caller-supplied part of a new event. The store
// assigns ID and CreatedAt.
type EventDraft struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    EventLocation `json:"location"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	CreatedBy   string        `json:"createdBy"`
	Attendees   []string      `json:"attendees"`
	Weather     *Weather      `json:"weather,omitempty"`
}

// EventPatch carries the optional fields a partial update may touch.
type EventPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Time        *string        `json:"time,omitempty"`
	Location    *EventLocation `json:"location,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Image       *string        `json:"image,omitempty"`
	Attendees   []string       `json:"attendees,omitempty"`
	Weather     *Weather       `json:"weather,omitempty"`
}

// Apply merges the patch into the event.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Attendees != nil {
		e.Attendees = append([]string(nil), p.Attendees...)
	}
	if p.Weather != nil {
		w := *p.Weather
		e.Weather = &w
	}
}
