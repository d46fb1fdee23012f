package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes     = 30
	DefaultAppointmentDurationMinutes = 60
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 1
	MaxAppointmentDurationMinutes = 480 // 8 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxExceptionReasonLength    = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses appointment statuses that block the stylist's calendar
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses appointment statuses excluded from availability calculation
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledByStylist,
}
