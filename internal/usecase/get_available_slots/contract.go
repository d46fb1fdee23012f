package get_available_slots

import (
	"context"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	// GetByStylistAndWeekday получает рабочее окно стилиста на день недели
	GetByStylistAndWeekday(ctx context.Context, stylistID int64, weekday time.Weekday) (*domain.WorkingHours, error)
}

// UnavailabilityRepository интерфейс репозитория исключений недоступности
type UnavailabilityRepository interface {
	// ListByStylistAndDate получает все исключения стилиста на дату
	ListByStylistAndDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.UnavailabilityException, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByStylistWithFilter получает записи стилиста с фильтрацией
	GetByStylistWithFilter(ctx context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID int64) (*profileservice.Profile, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
