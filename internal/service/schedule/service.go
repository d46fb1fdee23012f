package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	unavailabilityRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/unavailability"
	workingHoursRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/workinghours"
	profileClient "github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// Service сервис управления расписанием стилиста:
// рабочие часы по дням недели и разовые исключения недоступности
type Service struct {
	workingHoursRepo   WorkingHoursRepository
	unavailabilityRepo UnavailabilityRepository
	profileClient      ProfileServiceClient
	logger             Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	workingHoursRepo WorkingHoursRepository,
	unavailabilityRepo UnavailabilityRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		workingHoursRepo:   workingHoursRepo,
		unavailabilityRepo: unavailabilityRepo,
		profileClient:      profileClient,
		logger:             logger,
	}
}

// GetSchedule получает расписание стилиста: рабочие окна по дням недели
// и исключения недоступности за период (по умолчанию - ближайшие 30 дней)
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for stylist=%d", req.StylistID)

	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	hours, err := s.workingHoursRepo.ListByStylist(ctx, req.StylistID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list working hours for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	from := time.Now()
	if req.From != nil {
		from = *req.From
	}
	to := from.AddDate(0, 0, 30)
	if req.To != nil {
		to = *req.To
	}

	exceptions, err := s.unavailabilityRepo.ListByStylistAndRange(ctx, req.StylistID, from, to)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list exceptions for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: fetched %d working windows and %d exceptions for stylist=%d",
		len(hours), len(exceptions), req.StylistID)

	return &models.ScheduleResponse{
		StylistID:    req.StylistID,
		WorkingHours: models.FromDomainWorkingHoursList(hours),
		Exceptions:   models.FromDomainExceptionList(exceptions),
	}, nil
}

// UpdateWorkingHours обновляет рабочие окна стилиста.
// Для каждого дня из запроса окно создается/обновляется, либо удаляется,
// если день помечен как выходной. Не упомянутые дни не меняются.
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating working hours for stylist=%d by user=%d", req.StylistID, req.UserID)

	if err := s.checkStylistAccess(ctx, req.StylistID, req.UserID); err != nil {
		return nil, err
	}

	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: days is required", ErrInvalidInput)
	}

	for _, day := range req.Days {
		if day.Weekday < 0 || day.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday must be in [0, 6], got %d", ErrInvalidInput, day.Weekday)
		}

		if day.Closed {
			err := s.workingHoursRepo.DeleteByStylistAndWeekday(ctx, req.StylistID, time.Weekday(day.Weekday))
			if err != nil && !errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
				s.logger.Error("UpdateWorkingHours: failed to delete weekday=%d for stylist=%d: %v",
					day.Weekday, req.StylistID, err)
				return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
			}
			continue
		}

		startTime, endTime, err := parseTimeRange(day.StartTime, day.EndTime)
		if err != nil {
			s.logger.Warn("UpdateWorkingHours: invalid window for weekday=%d: %v", day.Weekday, err)
			return nil, err
		}

		wh := &domain.WorkingHours{
			StylistID: req.StylistID,
			Weekday:   time.Weekday(day.Weekday),
			StartTime: startTime,
			EndTime:   endTime,
		}

		if _, err := s.workingHoursRepo.Upsert(ctx, wh); err != nil {
			s.logger.Error("UpdateWorkingHours: failed to upsert weekday=%d for stylist=%d: %v",
				day.Weekday, req.StylistID, err)
			return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateWorkingHours: successfully updated %d days for stylist=%d", len(req.Days), req.StylistID)

	return s.GetSchedule(ctx, &models.GetScheduleRequest{StylistID: req.StylistID})
}

// CreateException создает исключение недоступности (отпуск, перерыв, разовый блок).
// Исключения могут пересекаться между собой - это допустимо.
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: creating exception for stylist=%d by user=%d", req.StylistID, req.UserID)

	if err := s.checkStylistAccess(ctx, req.StylistID, req.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateException: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, endTime, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("CreateException: invalid time range: %v", err)
		return nil, err
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxExceptionReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxExceptionReasonLength)
	}

	exc := &domain.UnavailabilityException{
		StylistID: req.StylistID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    req.Reason,
	}

	created, err := s.unavailabilityRepo.Create(ctx, exc)
	if err != nil {
		s.logger.Error("CreateException: failed to create exception for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: successfully created exception id=%d for stylist=%d", created.ID, req.StylistID)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет исключение недоступности стилиста
func (s *Service) DeleteException(ctx context.Context, req *models.DeleteExceptionRequest) error {
	s.logger.Info("DeleteException: deleting exception id=%d for stylist=%d by user=%d",
		req.ExceptionID, req.StylistID, req.UserID)

	if err := s.checkStylistAccess(ctx, req.StylistID, req.UserID); err != nil {
		return err
	}

	if err := s.unavailabilityRepo.Delete(ctx, req.ExceptionID, req.StylistID); err != nil {
		if errors.Is(err, unavailabilityRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found for stylist=%d", req.ExceptionID, req.StylistID)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: failed to delete exception id=%d: %v", req.ExceptionID, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d", req.ExceptionID)
	return nil
}

// Вспомогательные методы

// checkStylistAccess проверяет, что пользователь меняет собственное расписание
// и его профиль - активный профиль стилиста
func (s *Service) checkStylistAccess(ctx context.Context, stylistID, userID int64) error {
	if userID != stylistID {
		s.logger.Warn("checkStylistAccess: user=%d is not stylist=%d", userID, stylistID)
		return ErrAccessDenied
	}

	profile, err := s.profileClient.GetProfile(ctx, stylistID)
	if err != nil {
		if errors.Is(err, profileClient.ErrProfileNotFound) {
			s.logger.Warn("checkStylistAccess: stylist id=%d not found", stylistID)
			return ErrStylistNotFound
		}
		s.logger.Error("checkStylistAccess: failed to get profile id=%d: %v", stylistID, err)
		return fmt.Errorf("%w: checkStylistAccess - failed to get profile: %v", ErrInternal, err)
	}

	if !profile.IsActive {
		s.logger.Warn("checkStylistAccess: stylist id=%d is inactive", stylistID)
		return ErrStylistInactive
	}
	if !profile.IsStylist() {
		s.logger.Warn("checkStylistAccess: profile id=%d is not a stylist", stylistID)
		return ErrNotAStylist
	}

	return nil
}

// parseTimeRange парсит и валидирует пару "HH:MM"; start должен быть строго раньше end
func parseTimeRange(start, end string) (types.TimeString, types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return "", "", fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, startTime, endTime)
	}

	return startTime, endTime, nil
}
