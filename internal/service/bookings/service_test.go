package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	appointmentRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/appointment"
	"github.com/faceoff2003/hairbnb-backend/internal/service/bookings/models"
	"github.com/faceoff2003/hairbnb-backend/pkg/ptr"
)

// fakeAppointmentRepo фейк репозитория записей
type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByClientID(_ context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.ClientID != clientID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetByStylistWithFilter(_ context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.StylistID == filter.StylistID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const (
	clientID  = int64(1)
	stylistID = int64(7)
	otherID   = int64(99)
)

func newTestService(appointments ...*domain.Appointment) (*Service, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, appt := range appointments {
		repo.appointments[appt.ID] = appt
	}
	return NewService(repo, noopLogger{}), repo
}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              10,
		ClientID:        clientID,
		StylistID:       stylistID,
		ServiceID:       3,
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		ServiceName:     "Стрижка",
		ServicePrice:    1500,
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(pendingAppointment())

	t.Run("client sees own appointment", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10, clientID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("stylist sees own appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, stylistID)
		assert.NoError(t, err)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, otherID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, clientID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetClientAppointments(t *testing.T) {
	svc, _ := newTestService(pendingAppointment())

	resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: clientID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	// Некорректный статус - ошибка валидации
	_, err = svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: clientID,
		Status:   ptr.Ptr("nonsense"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStylistAppointments(t *testing.T) {
	svc, _ := newTestService(pendingAppointment())

	t.Run("stylist sees own calendar", func(t *testing.T) {
		resp, err := svc.GetStylistAppointments(context.Background(), &models.GetStylistAppointmentsRequest{
			UserID:    stylistID,
			StylistID: stylistID,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
	})

	t.Run("other user gets access denied", func(t *testing.T) {
		_, err := svc.GetStylistAppointments(context.Background(), &models.GetStylistAppointmentsRequest{
			UserID:    clientID,
			StylistID: stylistID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels own appointment", func(t *testing.T) {
		svc, repo := newTestService(pendingAppointment())

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
			UserID:             clientID,
			CancellationReason: "передумал",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
		assert.Equal(t, "передумал", repo.cancelledReason)
	})

	t.Run("stylist cancels appointment in own calendar", func(t *testing.T) {
		svc, repo := newTestService(pendingAppointment())

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
			UserID: stylistID,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByStylist, repo.cancelledStatus)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		svc, _ := newTestService(pendingAppointment())

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
			UserID: otherID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		appt := pendingAppointment()
		appt.Status = domain.StatusCompleted
		svc, _ := newTestService(appt)

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
			UserID: clientID,
		})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Cancel(context.Background(), 404, &models.CancelAppointmentRequest{
			UserID: clientID,
		})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
