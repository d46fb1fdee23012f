package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	workingHoursRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/workinghours"
	profileClient "github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// Фейки для зависимостей use case

type fakeProfileClient struct {
	profiles map[int64]*profileClient.Profile
	err      error
}

func (f *fakeProfileClient) GetProfile(_ context.Context, userID int64) (*profileClient.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, profileClient.ErrProfileNotFound
	}
	return p, nil
}

type fakeWorkingHoursRepo struct {
	hours map[time.Weekday]*domain.WorkingHours
}

func (f *fakeWorkingHoursRepo) GetByStylistAndWeekday(_ context.Context, _ int64, weekday time.Weekday) (*domain.WorkingHours, error) {
	wh, ok := f.hours[weekday]
	if !ok {
		return nil, workingHoursRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

type fakeUnavailabilityRepo struct {
	exceptions []*domain.UnavailabilityException
}

func (f *fakeUnavailabilityRepo) ListByStylistAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.UnavailabilityException, error) {
	return f.exceptions, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByStylistWithFilter(_ context.Context, _ domain.StylistAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const testStylistID = int64(7)

// futureDate - среда
var futureDate = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

func activeStylist() *fakeProfileClient {
	return &fakeProfileClient{profiles: map[int64]*profileClient.Profile{
		testStylistID: {ID: testStylistID, Role: profileClient.RoleStylist, IsActive: true},
	}}
}

func openAllWeek(start, end string) *fakeWorkingHoursRepo {
	hours := make(map[time.Weekday]*domain.WorkingHours)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		hours[wd] = &domain.WorkingHours{
			StylistID: testStylistID,
			Weekday:   wd,
			StartTime: mustTime(start),
			EndTime:   mustTime(end),
		}
	}
	return &fakeWorkingHoursRepo{hours: hours}
}

func newTestUseCase(
	profiles *fakeProfileClient,
	hours *fakeWorkingHoursRepo,
	unavail *fakeUnavailabilityRepo,
	appts *fakeAppointmentRepo,
	now time.Time,
) *UseCase {
	return NewUseCase(profiles, hours, unavail, appts, 30, noopLogger{}).
		WithTimeProvider(&fakeTimeProvider{now: now})
}

func TestExecute_ScenarioWithBookingAndException(t *testing.T) {
	// Стилист работает 09:00-17:00, запись 10:00-11:00, исключение 13:00-13:30
	uc := newTestUseCase(
		activeStylist(),
		openAllWeek("09:00", "17:00"),
		&fakeUnavailabilityRepo{exceptions: []*domain.UnavailabilityException{
			{StylistID: testStylistID, Date: futureDate, StartTime: "13:00", EndTime: "13:30"},
		}},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{StylistID: testStylistID, Date: futureDate, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID:       testStylistID,
		Date:            futureDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	starts := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		starts[i] = s.StartTime.String()
	}
	assert.Equal(t, []string{
		"09:00", "09:30",
		"11:00", "11:30", "12:00", "12:30",
		"13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}, starts)

	for _, s := range resp.Slots {
		end, err := s.StartTime.AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, end, s.EndTime)
	}
}

func TestExecute_ClosedDayReturnsEmptySlots(t *testing.T) {
	uc := newTestUseCase(
		activeStylist(),
		&fakeWorkingHoursRepo{hours: map[time.Weekday]*domain.WorkingHours{}},
		&fakeUnavailabilityRepo{},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID:       testStylistID,
		Date:            futureDate,
		DurationMinutes: 60,
	})

	// "Закрыто" - это пустой успешный результат, а не ошибка
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(
		activeStylist(),
		openAllWeek("09:00", "17:00"),
		&fakeUnavailabilityRepo{},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), &Request{
		StylistID:       testStylistID,
		Date:            futureDate, // Раньше, чем now
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayClampsWindowStart(t *testing.T) {
	// Запрос на сегодня в 09:37 - первый слот не раньше 10:00
	now := time.Date(2026, 9, 16, 9, 37, 0, 0, time.UTC)

	uc := newTestUseCase(
		activeStylist(),
		openAllWeek("09:00", "17:00"),
		&fakeUnavailabilityRepo{},
		&fakeAppointmentRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID:       testStylistID,
		Date:            futureDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
}

func TestExecute_TodayWindowAlreadyPassed(t *testing.T) {
	now := time.Date(2026, 9, 16, 18, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		activeStylist(),
		openAllWeek("09:00", "17:00"),
		&fakeUnavailabilityRepo{},
		&fakeAppointmentRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID:       testStylistID,
		Date:            futureDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ProfileValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		profiles *fakeProfileClient
		wantErr  error
	}{
		{
			name:     "stylist not found",
			profiles: &fakeProfileClient{profiles: map[int64]*profileClient.Profile{}},
			wantErr:  ErrStylistNotFound,
		},
		{
			name: "stylist inactive",
			profiles: &fakeProfileClient{profiles: map[int64]*profileClient.Profile{
				testStylistID: {ID: testStylistID, Role: profileClient.RoleStylist, IsActive: false},
			}},
			wantErr: ErrStylistInactive,
		},
		{
			name: "profile is a client",
			profiles: &fakeProfileClient{profiles: map[int64]*profileClient.Profile{
				testStylistID: {ID: testStylistID, Role: profileClient.RoleClient, IsActive: true},
			}},
			wantErr: ErrNotAStylist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				tt.profiles,
				openAllWeek("09:00", "17:00"),
				&fakeUnavailabilityRepo{},
				&fakeAppointmentRepo{},
				now,
			)

			_, err := uc.Execute(context.Background(), &Request{
				StylistID:       testStylistID,
				Date:            futureDate,
				DurationMinutes: 60,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InvalidDuration(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	for _, duration := range []int{-1, 0, 481} {
		uc := newTestUseCase(
			activeStylist(),
			openAllWeek("09:00", "17:00"),
			&fakeUnavailabilityRepo{},
			&fakeAppointmentRepo{},
			now,
		)

		_, err := uc.Execute(context.Background(), &Request{
			StylistID:       testStylistID,
			Date:            futureDate,
			DurationMinutes: duration,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration=%d", duration)
	}
}

func TestExecute_CancelledAppointmentsDoNotBlock(t *testing.T) {
	uc := newTestUseCase(
		activeStylist(),
		openAllWeek("09:00", "11:00"),
		&fakeUnavailabilityRepo{},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{StylistID: testStylistID, Date: futureDate, StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusCancelledByClient},
		}},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID:       testStylistID,
		Date:            futureDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	starts := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		starts[i] = s.StartTime.String()
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, starts)
}

func TestExecute_Idempotence(t *testing.T) {
	uc := newTestUseCase(
		activeStylist(),
		openAllWeek("09:00", "17:00"),
		&fakeUnavailabilityRepo{exceptions: []*domain.UnavailabilityException{
			{StylistID: testStylistID, Date: futureDate, StartTime: "12:00", EndTime: "12:45"},
		}},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	req := &Request{StylistID: testStylistID, Date: futureDate, DurationMinutes: 45}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func mustTime(s string) types.TimeString {
	return types.TimeString(s)
}
