package mocks

import (
	"time"

	"github.com/eventpulse/eventpulse/internal/models"
)

// Categories lists the event categories the app filters by. "All" is
// the catch-all option shown in the category bar.
var Categories = []string{"All", "Music", "Sports", "Food", "Art", "Tech", "Outdoors"}

var events = []models.Event{
	{
		ID:          "e1",
		Title:       "Tech Startup Mixer",
		Description: "Network with founders, engineers and investors from the Bay Area startup scene. Lightning pitches start at 7pm.",
		Date:        "2025-06-05",
		Time:        "18:30",
		Location: models.EventLocation{
			Name:      "The Foundry SF",
			Address:   "123 Howard St, San Francisco, CA",
			Latitude:  37.7749,
			Longitude: -122.4194,
		},
		Category:  "Tech",
		Image:     "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
		CreatedBy: "4",
		Attendees: []string{"4", "1", "2"},
		Weather:   &models.Weather{Temp: 68, Condition: "Clear", Icon: "clear-night"},
		CreatedAt: time.Date(2025, time.May, 20, 11, 0, 0, 0, time.UTC),
	},
	{
		ID:          "e2",
		Title:       "Golden Gate Park Farmers Market",
		Description: "Weekly market with local produce, street food and live acoustic sets near the bandshell.",
		Date:        "2025-06-07",
		Time:        "09:00",
		Location: models.EventLocation{
			Name:      "Golden Gate Park",
			Address:   "Music Concourse Dr, San Francisco, CA",
			Latitude:  37.7694,
			Longitude: -122.4862,
		},
		Category:  "Food",
		Image:     "https://images.unsplash.com/photo-1488459716781-31db52582fe9",
		CreatedBy: "3",
		Attendees: []string{"3", "1"},
		Weather:   &models.Weather{Temp: 72, Condition: "Sunny", Icon: "clear-day"},
		CreatedAt: time.Date(2025, time.May, 22, 16, 30, 0, 0, time.UTC),
	},
	{
		ID:          "e3",
		Title:       "Sunset Jazz at the Pier",
		Description: "Open-air jazz evening featuring local quartets. Bring a blanket, food trucks on site.",
		Date:        "2025-06-08",
		Time:        "19:00",
		Location: models.EventLocation{
			Name:      "Pier 39",
			Address:   "The Embarcadero, San Francisco, CA",
			Latitude:  37.8087,
			Longitude: -122.4098,
		},
		Category:  "Music",
		Image:     "https://images.unsplash.com/photo-1511192336575-5a79af67a629",
		CreatedBy: "2",
		Attendees: []string{"2"},
		Weather:   &models.Weather{Temp: 64, Condition: "Partly Cloudy", Icon: "partly-cloudy-night"},
		CreatedAt: time.Date(2025, time.May, 25, 9, 45, 0, 0, time.UTC),
	},
	{
		ID:          "e4",
		Title:       "Art Gallery Opening: New Voices",
		Description: "Opening night for an exhibition of emerging Bay Area painters and sculptors. RSVP required.",
		Date:        "2025-06-10",
		Time:        "18:00",
		Location: models.EventLocation{
			Name:      "Mission Arts Center",
			Address:   "2868 Mission St, San Francisco, CA",
			Latitude:  37.7520,
			Longitude: -122.4184,
		},
		Category:  "Art",
		Image:     "https://images.unsplash.com/photo-1531243269054-5ebf6f34081e",
		CreatedBy: "4",
		Attendees: []string{"4", "1"},
		Weather:   &models.Weather{Temp: 66, Condition: "Clear", Icon: "clear-night"},
		CreatedAt: time.Date(2025, time.May, 27, 13, 10, 0, 0, time.UTC),
	},
	{
		ID:          "e5",
		Title:       "South Bay Trail Run",
		Description: "Casual 10k group run through the Los Gatos Creek Trail. All paces welcome, coffee after.",
		Date:        "2025-06-14",
		Time:        "08:00",
		Location: models.EventLocation{
			Name:      "Los Gatos Creek Trail",
			Address:   "Meridian Ave, San Jose, CA",
			Latitude:  37.3382,
			Longitude: -121.8863,
		},
		Category:  "Outdoors",
		Image:     "https://images.unsplash.com/photo-1502904550040-7534597429ae",
		CreatedBy: "3",
		Attendees: []string{"3"},
		Weather:   &models.Weather{Temp: 75, Condition: "Sunny", Icon: "clear-day"},
		CreatedAt: time.Date(2025, time.May, 29, 7, 20, 0, 0, time.UTC),
	},
}

// Events returns a fresh copy of the seed event collection.
func Events() []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}
