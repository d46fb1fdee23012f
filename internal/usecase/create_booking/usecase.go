package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	workingHoursRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/workinghours"
	profileClient "github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
)

// UseCase use case для создания записи к стилисту.
//
// Доступность слота, показанная клиенту ранее, носит справочный характер:
// реальная проверка "нет двух активных записей с пересекающимся временем"
// выполняется здесь, в сериализуемой транзакции с блокировкой строк.
type UseCase struct {
	appointmentRepo    AppointmentRepository
	workingHoursRepo   WorkingHoursRepository
	unavailabilityRepo UnavailabilityRepository
	profileClient      ProfileServiceClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	granularity        int
	defaultDuration    int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	workingHoursRepo WorkingHoursRepository,
	unavailabilityRepo UnavailabilityRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	granularityMinutes int,
	defaultDurationMinutes int,
	logger Logger,
) *UseCase {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if defaultDurationMinutes <= 0 {
		defaultDurationMinutes = domain.DefaultAppointmentDurationMinutes
	}
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		workingHoursRepo:   workingHoursRepo,
		unavailabilityRepo: unavailabilityRepo,
		profileClient:      profileClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		granularity:        granularityMinutes,
		defaultDuration:    defaultDurationMinutes,
		logger:             logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы два клиента не забронировали пересекающиеся слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, stylist=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.defaultDuration
	}
	if err := validateDuration(duration); err != nil {
		uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату и время начала
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем профиль клиента
	client, err := uc.profileClient.GetProfile(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client profile id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client profile: %v", ErrInternal, err)
	}
	if !client.IsActive {
		uc.logger.Warn("CreateBooking: client id=%d is inactive", req.ClientID)
		return nil, ErrClientInactive
	}

	// 5. Проверяем профиль стилиста
	stylist, err := uc.profileClient.GetProfile(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get stylist profile id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist profile: %v", ErrInternal, err)
	}
	if !stylist.IsActive {
		uc.logger.Warn("CreateBooking: stylist id=%d is inactive", req.StylistID)
		return nil, ErrStylistInactive
	}
	if !stylist.IsStylist() {
		uc.logger.Warn("CreateBooking: profile id=%d is not a stylist", req.StylistID)
		return nil, ErrNotAStylist
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем рабочее окно на день недели
		window, err := uc.workingHoursRepo.GetByStylistAndWeekday(txCtx, req.StylistID, req.Date.Weekday())
		if err != nil {
			if errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
				uc.logger.Warn("CreateBooking: stylist id=%d is closed on %s",
					req.StylistID, req.Date.Format(domain.DateFormat))
				return ErrStylistClosed
			}
			uc.logger.Error("CreateBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// 6.2. Проверяем, что слот лежит в окне и выровнен по шагу
		if err := validateSlotPlacement(window, req.StartTime, duration, uc.granularity); err != nil {
			uc.logger.Warn("CreateBooking: slot placement validation failed: %v", err)
			return err
		}

		slotEnd, err := req.StartTime.AddMinutes(duration)
		if err != nil {
			return fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}

		// 6.3. Проверяем пересечение с исключениями недоступности
		exceptions, err := uc.unavailabilityRepo.ListByStylistAndDate(txCtx, req.StylistID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get unavailability exceptions: %v", err)
			return fmt.Errorf("%w: failed to get unavailability exceptions: %v", ErrInternal, err)
		}

		excObstacles := make([]domain.Obstacle, len(exceptions))
		for i, exc := range exceptions {
			excObstacles[i] = domain.Obstacle{Start: exc.StartTime, End: exc.EndTime, Kind: domain.ObstacleException}
		}

		if overlapsAny(req.StartTime, slotEnd, excObstacles) {
			uc.logger.Warn("CreateBooking: slot %s-%s overlaps an unavailability exception", req.StartTime, slotEnd)
			return ErrSlotNotAvailable
		}

		// 6.4. Получаем активные записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.StylistAppointmentsFilter{
			StylistID:       req.StylistID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByStylistWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		apptObstacles := make([]domain.Obstacle, 0, len(appointments))
		for _, appt := range appointments {
			if !appt.IsActive() {
				continue
			}
			apptDuration := appt.DurationMinutes
			if apptDuration <= 0 {
				apptDuration = uc.defaultDuration
			}
			apptEnd, err := appt.StartTime.AddMinutes(apptDuration)
			if err != nil {
				apptEnd = "23:59"
			}
			apptObstacles = append(apptObstacles, domain.Obstacle{Start: appt.StartTime, End: apptEnd, Kind: domain.ObstacleBooking})
		}

		if overlapsAny(req.StartTime, slotEnd, apptObstacles) {
			uc.logger.Warn("CreateBooking: slot %s-%s overlaps an active appointment", req.StartTime, slotEnd)
			return ErrSlotNotAvailable
		}

		// 6.5. Создаем запись
		appt := &domain.Appointment{
			ClientID:        req.ClientID,
			StylistID:       req.StylistID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			ServiceName:     req.ServiceName,
			ServicePrice:    req.ServicePrice,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		StylistID:       result.StylistID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
