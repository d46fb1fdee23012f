package get_user_bookings

import (
	"context"

	"github.com/faceoff2003/hairbnb-backend/internal/service/bookings/models"
)

type BookingService interface {
	GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
