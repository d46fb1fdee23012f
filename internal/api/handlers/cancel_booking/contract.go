package cancel_booking

import (
	"context"

	"github.com/faceoff2003/hairbnb-backend/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
