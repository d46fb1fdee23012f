package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	workingHoursRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/workinghours"
	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// endOfDay верхняя граница для интервалов, не помещающихся в сутки
const endOfDay = types.TimeString("23:59")

// collectObstacles собирает препятствия стилиста на дату: рабочее окно
// на день недели, исключения недоступности и активные записи.
//
// Возвращает (nil, nil, nil), если у стилиста нет рабочего окна на этот
// день недели - "закрыто" обрабатывается вызывающим кодом как ноль слотов,
// а не как ошибка.
//
// Пересекающиеся препятствия намеренно НЕ объединяются: sweepSlots
// корректно обрабатывает пересечения, достаточно сортировки по началу.
func (uc *UseCase) collectObstacles(ctx context.Context, stylistID int64, date time.Time) (*domain.WorkingHours, []domain.Obstacle, error) {
	window, err := uc.workingHoursRepo.GetByStylistAndWeekday(ctx, stylistID, date.Weekday())
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	exceptions, err := uc.unavailabilityRepo.ListByStylistAndDate(ctx, stylistID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to get unavailability exceptions: %v", ErrInternal, err)
	}

	filter := domain.StylistAppointmentsFilter{
		StylistID:       stylistID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false, // Только pending и confirmed
	}

	appointments, err := uc.appointmentRepo.GetByStylistWithFilter(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	obstacles := make([]domain.Obstacle, 0, len(exceptions)+len(appointments))

	for _, exc := range exceptions {
		obstacles = append(obstacles, domain.Obstacle{
			Start: exc.StartTime,
			End:   exc.EndTime,
			Kind:  domain.ObstacleException,
		})
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		duration := appt.DurationMinutes
		if duration <= 0 {
			duration = domain.DefaultAppointmentDurationMinutes
		}

		end, err := appt.StartTime.AddMinutes(duration)
		if err != nil {
			// Запись выходит за границу суток - блокируем до конца дня
			end = endOfDay
		}

		obstacles = append(obstacles, domain.Obstacle{
			Start: appt.StartTime,
			End:   end,
			Kind:  domain.ObstacleBooking,
		})
	}

	sort.Slice(obstacles, func(i, j int) bool {
		return obstacles[i].Start.IsBefore(obstacles[j].Start)
	})

	return window, obstacles, nil
}

// toMinuteSpans конвертирует препятствия в минутные интервалы для sweepSlots
func toMinuteSpans(obstacles []domain.Obstacle) ([]timeSpan, error) {
	spans := make([]timeSpan, len(obstacles))
	for i, o := range obstacles {
		start, err := o.Start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("invalid obstacle start %q: %v", o.Start, err)
		}
		end, err := o.End.Minutes()
		if err != nil {
			return nil, fmt.Errorf("invalid obstacle end %q: %v", o.End, err)
		}
		spans[i] = timeSpan{start: start, end: end}
	}
	return spans, nil
}
