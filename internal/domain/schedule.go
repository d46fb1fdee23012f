package domain

import (
	"time"

	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// WorkingHours represents the recurring working window of a stylist for one weekday.
// A stylist has at most one row per weekday; a missing row means "closed that day".
// StartTime < EndTime must hold.
type WorkingHours struct {
	ID        int64
	StylistID int64
	Weekday   time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if the interval [start, end) lies within the working window
func (w *WorkingHours) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// UnavailabilityException represents a one-off interval on a specific date
// during which the stylist does not accept appointments (vacation, break, ad-hoc block).
// Zero or more per date; exceptions may overlap each other.
type UnavailabilityException struct {
	ID        int64
	StylistID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
	CreatedAt time.Time
}
