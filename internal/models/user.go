package models

import "time"

// GeoPoint is a named coordinate pair used for user locations.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// User represents a user account in the EventPulse app.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     *GeoPoint `json:"location,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch carries the optional profile fields an update may touch.
// Nil fields are left unchanged.
type UserPatch struct {
	Username     *string   `json:"username,omitempty"`
	Email        *string   `json:"email,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Location     *GeoPoint `json:"location,omitempty"`
}

// Apply merges the patch into the user.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		loc := *p.Location
		u.Location = &loc
	}
}
