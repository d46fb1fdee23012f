package schedule

import (
	"context"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	ListByStylist(ctx context.Context, stylistID int64) ([]*domain.WorkingHours, error)
	Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	DeleteByStylistAndWeekday(ctx context.Context, stylistID int64, weekday time.Weekday) error
}

// UnavailabilityRepository интерфейс репозитория исключений недоступности
type UnavailabilityRepository interface {
	Create(ctx context.Context, exc *domain.UnavailabilityException) (*domain.UnavailabilityException, error)
	ListByStylistAndRange(ctx context.Context, stylistID int64, from, to time.Time) ([]*domain.UnavailabilityException, error)
	Delete(ctx context.Context, id int64, stylistID int64) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID int64) (*profileservice.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
