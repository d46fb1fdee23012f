package get_stylist_bookings

import (
	"context"

	"github.com/faceoff2003/hairbnb-backend/internal/service/bookings/models"
)

type BookingService interface {
	GetStylistAppointments(ctx context.Context, req *models.GetStylistAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
