// Package location provides the device location capability and the
// distance math used to find nearby events.
package location

import (
	"context"
	"errors"
	"math"
)

// ErrPermissionDenied is returned when the user has not granted
// location access.
var ErrPermissionDenied = errors.New("permission to access location was denied")

// Position is a resolved device location.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// Getter resolves the device's current position.
type Getter interface {
	Current(ctx context.Context) (Position, error)
}

// Static always reports a fixed position. Demo builds pin the device to
// known coordinates.
type Static struct {
	Position Position
}

func (s Static) Current(ctx context.Context) (Position, error) {
	return s.Position, nil
}

// Denied simulates a rejected location permission prompt.
type Denied struct{}

func (Denied) Current(ctx context.Context) (Position, error) {
	return Position{}, ErrPermissionDenied
}

const earthRadiusKm = 6371

// Distance returns the great-circle distance between two coordinates in
// kilometers, using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
