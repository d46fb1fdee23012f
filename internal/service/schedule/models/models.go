package models

import (
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
)

// Request модели

// DayWindow рабочее окно на один день недели.
// Closed = true означает выходной - существующее окно удаляется.
type DayWindow struct {
	Weekday   int    `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
}

// UpdateWorkingHoursRequest запрос на обновление рабочих часов стилиста
type UpdateWorkingHoursRequest struct {
	UserID    int64       `json:"userId"`
	StylistID int64       `json:"stylistId"`
	Days      []DayWindow `json:"days"`
}

// CreateExceptionRequest запрос на создание исключения недоступности
type CreateExceptionRequest struct {
	UserID    int64   `json:"userId"`
	StylistID int64   `json:"stylistId"`
	Date      string  `json:"date"` // YYYY-MM-DD
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    *string `json:"reason,omitempty"`
}

// DeleteExceptionRequest запрос на удаление исключения
type DeleteExceptionRequest struct {
	UserID      int64 `json:"userId"`
	StylistID   int64 `json:"stylistId"`
	ExceptionID int64 `json:"exceptionId"`
}

// GetScheduleRequest запрос на получение расписания стилиста
type GetScheduleRequest struct {
	StylistID int64      `json:"stylistId"`
	From      *time.Time `json:"from,omitempty"` // Начало периода для исключений
	To        *time.Time `json:"to,omitempty"`   // Конец периода для исключений
}

// Response модели

// WorkingHoursResponse рабочее окно на день недели
type WorkingHoursResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ExceptionResponse исключение недоступности
type ExceptionResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    *string `json:"reason,omitempty"`
}

// ScheduleResponse расписание стилиста: рабочие окна плюс исключения за период
type ScheduleResponse struct {
	StylistID    int64                  `json:"stylistId"`
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
	Exceptions   []ExceptionResponse    `json:"exceptions"`
}

// Методы конвертации

// FromDomainWorkingHoursList конвертирует рабочие окна в DTO
func FromDomainWorkingHoursList(hours []*domain.WorkingHours) []WorkingHoursResponse {
	result := make([]WorkingHoursResponse, len(hours))
	for i, wh := range hours {
		result[i] = WorkingHoursResponse{
			Weekday:   int(wh.Weekday),
			StartTime: wh.StartTime.String(),
			EndTime:   wh.EndTime.String(),
		}
	}
	return result
}

// FromDomainExceptionList конвертирует исключения в DTO
func FromDomainExceptionList(exceptions []*domain.UnavailabilityException) []ExceptionResponse {
	result := make([]ExceptionResponse, len(exceptions))
	for i, exc := range exceptions {
		result[i] = ExceptionResponse{
			ID:        exc.ID,
			Date:      exc.Date.Format(domain.DateFormat),
			StartTime: exc.StartTime.String(),
			EndTime:   exc.EndTime.String(),
			Reason:    exc.Reason,
		}
	}
	return result
}

// FromDomainException конвертирует одно исключение в DTO
func FromDomainException(exc *domain.UnavailabilityException) *ExceptionResponse {
	if exc == nil {
		return nil
	}
	return &ExceptionResponse{
		ID:        exc.ID,
		Date:      exc.Date.Format(domain.DateFormat),
		StartTime: exc.StartTime.String(),
		EndTime:   exc.EndTime.String(),
		Reason:    exc.Reason,
	}
}
