package domain

import "github.com/faceoff2003/hairbnb-backend/pkg/types"

// ObstacleKind identifies the source of an obstacle
type ObstacleKind string

const (
	ObstacleException ObstacleKind = "exception"
	ObstacleBooking   ObstacleKind = "booking"
)

// Obstacle represents a half-open interval [Start, End) on the queried date
// that removes time from a stylist's availability. Derived from either an
// UnavailabilityException or an active Appointment; built fresh on every
// availability query and never persisted.
type Obstacle struct {
	Start types.TimeString
	End   types.TimeString
	Kind  ObstacleKind
}
