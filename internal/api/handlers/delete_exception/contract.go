package delete_exception

import (
	"context"

	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
)

type ScheduleService interface {
	DeleteException(ctx context.Context, req *models.DeleteExceptionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
