package get_available_slots

import (
	"fmt"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
)

// validateRequest валидирует форму входных данных запроса
func validateRequest(req *Request) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDuration проверяет, что длительность в допустимом диапазоне [1, 480] минут
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

// validateDate проверяет, что дата не в прошлом.
// Сегодняшняя дата допустима - слоты до текущего момента отсекаются
// округлением начала окна, а не валидацией.
func validateDate(date, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrDateInPast
	}
	return nil
}

// validateStylistProfile проверяет, что профиль активен и принадлежит стилисту
func validateStylistProfile(profile *profileservice.Profile) error {
	if !profile.IsActive {
		return ErrStylistInactive
	}
	if !profile.IsStylist() {
		return ErrNotAStylist
	}
	return nil
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
