package create_booking

import (
	"fmt"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// validateRequest валидирует форму входных данных запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ClientID == req.StylistID {
		return fmt.Errorf("%w: client cannot book themselves", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и валидно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDuration проверяет длительность записи
func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinAppointmentDurationMinutes ||
		durationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
			ErrInvalidDuration,
			domain.MinAppointmentDurationMinutes,
			domain.MaxAppointmentDurationMinutes,
			durationMinutes)
	}
	return nil
}

// validateSlotPlacement проверяет, что слот целиком лежит в рабочем окне
// и его начало достижимо от начала окна шагом granularity
func validateSlotPlacement(window *domain.WorkingHours, start types.TimeString, durationMinutes, granularity int) error {
	windowStart, err := window.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid window start: %v", ErrInternal, err)
	}
	windowEnd, err := window.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid window end: %v", ErrInternal, err)
	}
	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if startMin < windowStart || startMin+durationMinutes > windowEnd {
		return fmt.Errorf("%w: slot is outside working hours %s-%s",
			ErrInvalidTimeSlot, window.StartTime, window.EndTime)
	}

	if granularity > 0 && (startMin-windowStart)%granularity != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute boundaries from %s",
			ErrInvalidTimeSlot, granularity, window.StartTime)
	}

	return nil
}

// validateBookingTime проверяет, что для сегодняшней даты время начала ещё не прошло
func validateBookingTime(date time.Time, start types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	if start.IsBefore(currentTime) {
		return ErrTooLateToBook
	}

	return nil
}

// overlapsAny возвращает true, если интервал [start, end) пересекается хотя бы
// с одним из препятствий. Пересечение строгое: интервалы, граничащие друг с
// другом (конец одного равен началу другого), пересечением не считаются.
func overlapsAny(start, end types.TimeString, obstacles []domain.Obstacle) bool {
	for _, o := range obstacles {
		if o.Start.IsBefore(end) && o.End.IsAfter(start) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
