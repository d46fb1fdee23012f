package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	profileClient "github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// UseCase use case для получения доступных слотов стилиста
type UseCase struct {
	profileClient      ProfileServiceClient
	workingHoursRepo   WorkingHoursRepository
	unavailabilityRepo UnavailabilityRepository
	appointmentRepo    AppointmentRepository
	timeProvider       TimeProvider
	granularity        int // Шаг между началами соседних слотов в минутах
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profileClient ProfileServiceClient,
	workingHoursRepo WorkingHoursRepository,
	unavailabilityRepo UnavailabilityRepository,
	appointmentRepo AppointmentRepository,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	return &UseCase{
		profileClient:      profileClient,
		workingHoursRepo:   workingHoursRepo,
		unavailabilityRepo: unavailabilityRepo,
		appointmentRepo:    appointmentRepo,
		timeProvider:       &RealTimeProvider{},
		granularity:        granularityMinutes,
		logger:             logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов.
// Вычисление детерминировано: при одинаковых входных данных и одинаковом
// текущем времени результат всегда идентичен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%d, date=%s, duration=%d",
		req.StylistID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация формы входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация длительности
	if err := validateDuration(req.DurationMinutes); err != nil {
		uc.logger.Warn("GetAvailableSlots: duration validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Валидация даты (сегодня допустимо, строго прошлое - нет)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем и проверяем профиль стилиста
	profile, err := uc.profileClient.GetProfile(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get profile id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	if err := validateStylistProfile(profile); err != nil {
		uc.logger.Warn("GetAvailableSlots: stylist id=%d rejected: %v", req.StylistID, err)
		return nil, err
	}

	// 6. Собираем рабочее окно и препятствия
	window, obstacles, err := uc.collectObstacles(ctx, req.StylistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to collect obstacles: %v", err)
		return nil, err
	}

	// Нет рабочего окна на этот день недели - стилист закрыт, ноль слотов
	if window == nil {
		uc.logger.Info("GetAvailableSlots: stylist id=%d is closed on %s",
			req.StylistID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	windowStart, err := window.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid window start: %v", ErrInternal, err)
	}
	windowEnd, err := window.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid window end: %v", ErrInternal, err)
	}

	// 7. Для сегодняшней даты поднимаем начало окна до текущего времени,
	// округлённого вверх до границы шага (09:37 при шаге 30 -> 10:00)
	if isSameDay(req.Date, now) {
		rounded := roundUpToGranularity(minutesOfDay(now), uc.granularity)
		if rounded > windowStart {
			windowStart = rounded
		}
		if windowStart >= windowEnd {
			uc.logger.Info("GetAvailableSlots: working window for stylist id=%d already passed", req.StylistID)
			return uc.emptyResponse(req), nil
		}
	}

	spans, err := toMinuteSpans(obstacles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 8. Один проход слева направо по окну
	slotSpans := sweepSlots(windowStart, windowEnd, spans, req.DurationMinutes, uc.granularity)

	slots := make([]Slot, len(slotSpans))
	for i, s := range slotSpans {
		start, err := types.NewTimeStringFromMinutes(s.start)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to format slot start: %v", ErrInternal, err)
		}
		end, err := types.NewTimeStringFromMinutes(s.end)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to format slot end: %v", ErrInternal, err)
		}
		slots[i] = Slot{StartTime: start, EndTime: end}
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for stylist=%d, date=%s, duration=%d",
		len(slots), req.StylistID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	return &Response{
		Date:            req.Date,
		StylistID:       req.StylistID,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:            req.Date,
		StylistID:       req.StylistID,
		DurationMinutes: req.DurationMinutes,
		Slots:           []Slot{},
	}
}

// minutesOfDay возвращает количество полных минут с начала суток,
// округляя неполную минуту вверх: 09:30:01 считается как 09:31,
// чтобы слот не начинался раньше текущего момента.
func minutesOfDay(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		minutes++
	}
	return minutes
}
