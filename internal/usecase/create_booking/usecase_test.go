package create_booking

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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = 101
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByStylistWithFilter(_ context.Context, _ domain.StylistAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeWorkingHoursRepo struct {
	window *domain.WorkingHours
}

func (f *fakeWorkingHoursRepo) GetByStylistAndWeekday(_ context.Context, _ int64, _ time.Weekday) (*domain.WorkingHours, error) {
	if f.window == nil {
		return nil, workingHoursRepo.ErrWorkingHoursNotFound
	}
	return f.window, nil
}

type fakeUnavailabilityRepo struct {
	exceptions []*domain.UnavailabilityException
}

func (f *fakeUnavailabilityRepo) ListByStylistAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.UnavailabilityException, error) {
	return f.exceptions, nil
}

type fakeProfileClient struct {
	profiles map[int64]*profileClient.Profile
}

func (f *fakeProfileClient) GetProfile(_ context.Context, userID int64) (*profileClient.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, profileClient.ErrProfileNotFound
	}
	return p, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

const (
	testClientID  = int64(1)
	testStylistID = int64(7)
	testServiceID = int64(3)
)

var bookingDate = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

type fixture struct {
	appointments *fakeAppointmentRepo
	workingHours *fakeWorkingHoursRepo
	unavail      *fakeUnavailabilityRepo
	profiles     *fakeProfileClient
	txManager    *fakeTxManager
	uc           *UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		workingHours: &fakeWorkingHoursRepo{window: &domain.WorkingHours{
			StylistID: testStylistID,
			StartTime: "09:00",
			EndTime:   "17:00",
		}},
		unavail: &fakeUnavailabilityRepo{},
		profiles: &fakeProfileClient{profiles: map[int64]*profileClient.Profile{
			testClientID:  {ID: testClientID, Role: profileClient.RoleClient, IsActive: true},
			testStylistID: {ID: testStylistID, Role: profileClient.RoleStylist, IsActive: true},
		}},
		txManager: &fakeTxManager{},
	}
	f.uc = NewUseCase(f.appointments, f.workingHours, f.unavail, f.profiles, f.txManager, 30, 60, noopLogger{}).
		WithTimeProvider(&fakeTimeProvider{now: now})
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:     testClientID,
		StylistID:    testStylistID,
		ServiceID:    testServiceID,
		ServiceName:  "Стрижка",
		ServicePrice: 1500,
		Date:         bookingDate,
		StartTime:    types.TimeString("10:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	// Дефолтная длительность из конфигурации
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, f.txManager.calls)
	require.NotNil(t, f.appointments.created)
	assert.Equal(t, domain.StatusPending, f.appointments.created.Status)
}

func TestExecute_SlotOverlapsActiveAppointment(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	f.appointments.appointments = []*domain.Appointment{
		{StylistID: testStylistID, Date: bookingDate, StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	req := validRequest()
	req.DurationMinutes = 60 // 10:00-11:00 пересекается с 10:30-11:30

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentAppointmentDoesNotBlock(t *testing.T) {
	// Существующая запись 11:00-12:00, новая 10:00-11:00 - граничат, но не пересекаются
	f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	f.appointments.appointments = []*domain.Appointment{
		{StylistID: testStylistID, Date: bookingDate, StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	f.appointments.appointments = []*domain.Appointment{
		{StylistID: testStylistID, Date: bookingDate, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelledByClient},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotOverlapsException(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	f.unavail.exceptions = []*domain.UnavailabilityException{
		{StylistID: testStylistID, Date: bookingDate, StartTime: "10:30", EndTime: "11:00"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StylistClosed(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	f.workingHours.window = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStylistClosed)
}

func TestExecute_SlotPlacement(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		duration  int
		wantErr   error
	}{
		{"start not aligned to granularity", "10:15", 60, ErrInvalidTimeSlot},
		{"start before window", "08:30", 60, ErrInvalidTimeSlot},
		{"slot ends after window", "16:30", 60, ErrInvalidTimeSlot},
		{"exact fit at window end", "16:00", 60, nil},
		{"full window", "09:00", 480, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

			req := validRequest()
			req.StartTime = types.TimeString(tt.startTime)
			req.DurationMinutes = tt.duration

			_, err := f.uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture(time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TooLateToBookToday(t *testing.T) {
	// Запись на сегодня на 10:00, когда уже 10:30
	f := newFixture(time.Date(2026, 9, 16, 10, 30, 0, 0, time.UTC))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ProfileValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name: "client not found",
			setup: func(f *fixture) {
				delete(f.profiles.profiles, testClientID)
			},
			wantErr: ErrClientNotFound,
		},
		{
			name: "client inactive",
			setup: func(f *fixture) {
				f.profiles.profiles[testClientID].IsActive = false
			},
			wantErr: ErrClientInactive,
		},
		{
			name: "stylist not found",
			setup: func(f *fixture) {
				delete(f.profiles.profiles, testStylistID)
			},
			wantErr: ErrStylistNotFound,
		},
		{
			name: "stylist inactive",
			setup: func(f *fixture) {
				f.profiles.profiles[testStylistID].IsActive = false
			},
			wantErr: ErrStylistInactive,
		},
		{
			name: "stylist is actually a client",
			setup: func(f *fixture) {
				f.profiles.profiles[testStylistID].Role = profileClient.RoleClient
			},
			wantErr: ErrNotAStylist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now)
			tt.setup(f)

			_, err := f.uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InputValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("client books themselves", func(t *testing.T) {
		f := newFixture(now)
		req := validRequest()
		req.ClientID = testStylistID

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duration out of range", func(t *testing.T) {
		f := newFixture(now)
		req := validRequest()
		req.DurationMinutes = 481

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("missing start time", func(t *testing.T) {
		f := newFixture(now)
		req := validRequest()
		req.StartTime = ""

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
