package domain

import "github.com/faceoff2003/hairbnb-backend/pkg/types"

// AvailableSlot represents a candidate bookable interval of exactly the
// requested duration. Produced by the availability engine, consumed by the
// caller immediately; not persisted.
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
