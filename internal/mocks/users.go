// Package mocks holds the static seed data standing in for a backend.
// All "API calls" in the stores resolve against these collections.
package mocks

import (
	"time"

	"github.com/eventpulse/eventpulse/internal/models"
)

var users = []models.User{
	{
		ID:           "1",
		Username:     "johndoe",
		Email:        "john@example.com",
		ProfileImage: "https://images.unsplash.com/photo-1599566150163-29194dcaad36",
		Bio:          "Event enthusiast and local guide",
		Location: &models.GeoPoint{
			Latitude:  37.7749,
			Longitude: -122.4194,
			Name:      "San Francisco, CA",
		},
		CreatedAt: time.Date(2023, time.January, 15, 8, 30, 0, 0, time.UTC),
	},
	{
		ID:           "2",
		Username:     "janedoe",
		Email:        "jane@example.com",
		ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
		Bio:          "Photography lover and concert goer",
		Location: &models.GeoPoint{
			Latitude:  37.7749,
			Longitude: -122.4194,
			Name:      "San Francisco, CA",
		},
		CreatedAt: time.Date(2023, time.February, 20, 10, 15, 0, 0, time.UTC),
	},
	{
		ID:           "3",
		Username:     "mikesmith",
		Email:        "mike@example.com",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
		Bio:          "Food festival organizer and chef",
		Location: &models.GeoPoint{
			Latitude:  37.3382,
			Longitude: -121.8863,
			Name:      "San Jose, CA",
		},
		CreatedAt: time.Date(2023, time.March, 10, 14, 45, 0, 0, time.UTC),
	},
	{
		ID:           "4",
		Username:     "sarahlee",
		Email:        "sarah@example.com",
		ProfileImage: "https://images.unsplash.com/photo-1580489944761-15a19d654956",
		Bio:          "Tech meetup organizer and developer",
		Location: &models.GeoPoint{
			Latitude:  37.4419,
			Longitude: -122.1430,
			Name:      "Palo Alto, CA",
		},
		CreatedAt: time.Date(2023, time.April, 5, 9, 20, 0, 0, time.UTC),
	},
}

// Users returns a fresh copy of the seed user collection.
func Users() []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = cloneUser(u)
	}
	return out
}

// CurrentUser returns the demo user every successful login resolves to.
func CurrentUser() models.User {
	return cloneUser(users[0])
}

func cloneUser(u models.User) models.User {
	if u.Location != nil {
		loc := *u.Location
		u.Location = &loc
	}
	return u
}
