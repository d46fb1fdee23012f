package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	unavailabilityRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/unavailability"
	workingHoursRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/workinghours"
	profileClient "github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
	"github.com/faceoff2003/hairbnb-backend/pkg/ptr"
)

// Фейки для зависимостей сервиса

type fakeWorkingHoursRepo struct {
	hours map[time.Weekday]*domain.WorkingHours
}

func (f *fakeWorkingHoursRepo) ListByStylist(_ context.Context, _ int64) ([]*domain.WorkingHours, error) {
	result := make([]*domain.WorkingHours, 0, len(f.hours))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wh, ok := f.hours[wd]; ok {
			result = append(result, wh)
		}
	}
	return result, nil
}

func (f *fakeWorkingHoursRepo) Upsert(_ context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	f.hours[wh.Weekday] = wh
	return wh, nil
}

func (f *fakeWorkingHoursRepo) DeleteByStylistAndWeekday(_ context.Context, _ int64, weekday time.Weekday) error {
	if _, ok := f.hours[weekday]; !ok {
		return workingHoursRepo.ErrWorkingHoursNotFound
	}
	delete(f.hours, weekday)
	return nil
}

type fakeUnavailabilityRepo struct {
	exceptions map[int64]*domain.UnavailabilityException
	nextID     int64
}

func (f *fakeUnavailabilityRepo) Create(_ context.Context, exc *domain.UnavailabilityException) (*domain.UnavailabilityException, error) {
	f.nextID++
	created := *exc
	created.ID = f.nextID
	f.exceptions[created.ID] = &created
	return &created, nil
}

func (f *fakeUnavailabilityRepo) ListByStylistAndRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.UnavailabilityException, error) {
	result := make([]*domain.UnavailabilityException, 0, len(f.exceptions))
	for _, exc := range f.exceptions {
		result = append(result, exc)
	}
	return result, nil
}

func (f *fakeUnavailabilityRepo) Delete(_ context.Context, id int64, stylistID int64) error {
	exc, ok := f.exceptions[id]
	if !ok || exc.StylistID != stylistID {
		return unavailabilityRepo.ErrExceptionNotFound
	}
	delete(f.exceptions, id)
	return nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const stylistID = int64(7)

type fixture struct {
	workingHours *fakeWorkingHoursRepo
	unavail      *fakeUnavailabilityRepo
	profiles     *fakeProfileClient
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		workingHours: &fakeWorkingHoursRepo{hours: make(map[time.Weekday]*domain.WorkingHours)},
		unavail:      &fakeUnavailabilityRepo{exceptions: make(map[int64]*domain.UnavailabilityException)},
		profiles: &fakeProfileClient{profiles: map[int64]*profileClient.Profile{
			stylistID: {ID: stylistID, Role: profileClient.RoleStylist, IsActive: true},
		}},
	}
	f.svc = NewService(f.workingHours, f.unavail, f.profiles, noopLogger{})
	return f
}

func TestUpdateWorkingHours(t *testing.T) {
	t.Run("upserts windows and deletes closed days", func(t *testing.T) {
		f := newFixture()
		f.workingHours.hours[time.Monday] = &domain.WorkingHours{
			StylistID: stylistID, Weekday: time.Monday, StartTime: "08:00", EndTime: "12:00",
		}

		resp, err := f.svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Days: []models.DayWindow{
				{Weekday: int(time.Monday), Closed: true},
				{Weekday: int(time.Tuesday), StartTime: "09:00", EndTime: "17:00"},
			},
		})
		require.NoError(t, err)

		require.Len(t, resp.WorkingHours, 1)
		assert.Equal(t, int(time.Tuesday), resp.WorkingHours[0].Weekday)
		assert.Equal(t, "09:00", resp.WorkingHours[0].StartTime)
		assert.Equal(t, "17:00", resp.WorkingHours[0].EndTime)
	})

	t.Run("closing an already closed day is not an error", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Days:      []models.DayWindow{{Weekday: int(time.Sunday), Closed: true}},
		})
		assert.NoError(t, err)
	})

	t.Run("start must be before end", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Days:      []models.DayWindow{{Weekday: int(time.Monday), StartTime: "17:00", EndTime: "09:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Days:      []models.DayWindow{{Weekday: 7, StartTime: "09:00", EndTime: "17:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("other user gets access denied", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
			UserID:    99,
			StylistID: stylistID,
			Days:      []models.DayWindow{{Weekday: int(time.Monday), StartTime: "09:00", EndTime: "17:00"}},
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("inactive stylist rejected", func(t *testing.T) {
		f := newFixture()
		f.profiles.profiles[stylistID].IsActive = false

		_, err := f.svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Days:      []models.DayWindow{{Weekday: int(time.Monday), StartTime: "09:00", EndTime: "17:00"}},
		})
		assert.ErrorIs(t, err, ErrStylistInactive)
	})
}

func TestCreateException(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.CreateException(context.Background(), &models.CreateExceptionRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Date:      "2026-09-16",
			StartTime: "13:00",
			EndTime:   "13:30",
			Reason:    ptr.Ptr("обед"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2026-09-16", resp.Date)
		assert.Equal(t, "13:00", resp.StartTime)
		assert.Equal(t, "13:30", resp.EndTime)
	})

	t.Run("invalid date format", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.CreateException(context.Background(), &models.CreateExceptionRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Date:      "16.09.2026",
			StartTime: "13:00",
			EndTime:   "13:30",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start must be before end", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.CreateException(context.Background(), &models.CreateExceptionRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Date:      "2026-09-16",
			StartTime: "14:00",
			EndTime:   "13:00",
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("stylist not found", func(t *testing.T) {
		f := newFixture()
		delete(f.profiles.profiles, stylistID)

		_, err := f.svc.CreateException(context.Background(), &models.CreateExceptionRequest{
			UserID:    stylistID,
			StylistID: stylistID,
			Date:      "2026-09-16",
			StartTime: "13:00",
			EndTime:   "13:30",
		})
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})
}

func TestDeleteException(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture()
		created, err := f.unavail.Create(context.Background(), &domain.UnavailabilityException{
			StylistID: stylistID,
			Date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			StartTime: "13:00",
			EndTime:   "13:30",
		})
		require.NoError(t, err)

		err = f.svc.DeleteException(context.Background(), &models.DeleteExceptionRequest{
			UserID:      stylistID,
			StylistID:   stylistID,
			ExceptionID: created.ID,
		})
		require.NoError(t, err)
		assert.Empty(t, f.unavail.exceptions)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()

		err := f.svc.DeleteException(context.Background(), &models.DeleteExceptionRequest{
			UserID:      stylistID,
			StylistID:   stylistID,
			ExceptionID: 404,
		})
		assert.ErrorIs(t, err, ErrExceptionNotFound)
	})
}

func TestGetSchedule(t *testing.T) {
	f := newFixture()
	f.workingHours.hours[time.Monday] = &domain.WorkingHours{
		StylistID: stylistID, Weekday: time.Monday, StartTime: "09:00", EndTime: "17:00",
	}
	_, err := f.unavail.Create(context.Background(), &domain.UnavailabilityException{
		StylistID: stylistID,
		Date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "13:00",
		EndTime:   "13:30",
	})
	require.NoError(t, err)

	resp, err := f.svc.GetSchedule(context.Background(), &models.GetScheduleRequest{StylistID: stylistID})
	require.NoError(t, err)

	assert.Equal(t, stylistID, resp.StylistID)
	require.Len(t, resp.WorkingHours, 1)
	assert.Equal(t, "09:00", resp.WorkingHours[0].StartTime)
	require.Len(t, resp.Exceptions, 1)
	assert.Equal(t, "13:30", resp.Exceptions[0].EndTime)
}
