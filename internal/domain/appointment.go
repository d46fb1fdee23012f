package domain

import (
	"time"

	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending            AppointmentStatus = "pending"
	StatusConfirmed          AppointmentStatus = "confirmed"
	StatusCompleted          AppointmentStatus = "completed"
	StatusCancelledByClient  AppointmentStatus = "cancelled_by_client"
	StatusCancelledByStylist AppointmentStatus = "cancelled_by_stylist"
)

// Appointment represents a client appointment with a stylist
type Appointment struct {
	ID              int64
	ClientID        int64
	StylistID       int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment blocks the stylist's calendar.
// Only pending and confirmed appointments count; cancelled and completed do not.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByStylist
}

// StylistAppointmentsFilter filter for fetching a stylist's appointments
type StylistAppointmentsFilter struct {
	StylistID       int64              // Required
	StartDate       *time.Time         // Period start (optional, nil = unbounded)
	EndDate         *time.Time         // Period end (optional, nil = unbounded)
	Status          *AppointmentStatus // Status filter (optional)
	IncludeInactive bool               // Include cancelled and completed appointments
}
