package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	apptRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	deleteErr    error

	gotSortField string
	gotOrder     string
	gotNow       time.Time
	deletedID    int64
}

func (s *stubAppointmentRepo) GetUpcoming(_ context.Context, now time.Time) ([]*domain.Appointment, error) {
	s.gotNow = now
	return s.appointments, s.err
}

func (s *stubAppointmentRepo) List(_ context.Context, sortField, order string) ([]*domain.Appointment, error) {
	s.gotSortField = sortField
	s.gotOrder = order
	return s.appointments, s.err
}

func (s *stubAppointmentRepo) Delete(_ context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListAdmin_SortNormalization(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		order     string
		wantSort  string
		wantOrder string
	}{
		{name: "valid sort and order", sortBy: "client_name", order: "desc", wantSort: "client_name", wantOrder: "desc"},
		{name: "unknown column falls back", sortBy: "password", order: "desc", wantSort: "start_at", wantOrder: "asc"},
		{name: "sql injection attempt falls back", sortBy: "id; DROP TABLE appointments", order: "asc", wantSort: "start_at", wantOrder: "asc"},
		{name: "unknown order falls back to asc", sortBy: "phone", order: "sideways", wantSort: "phone", wantOrder: "asc"},
		{name: "empty params", sortBy: "", order: "", wantSort: "start_at", wantOrder: "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubAppointmentRepo{}
			svc := NewService(repo, nopLogger{})

			resp, err := svc.ListAdmin(context.Background(), &models.AdminListRequest{
				SortBy: tt.sortBy,
				Order:  tt.order,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantSort, repo.gotSortField)
			assert.Equal(t, tt.wantOrder, repo.gotOrder)
			assert.Equal(t, tt.wantSort, resp.SortBy)
			assert.Equal(t, tt.wantOrder, resp.Order)
		})
	}
}

func TestListAdmin_NextOrderToggles(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewService(repo, nopLogger{})

	// Текущая сортировка client_name ASC: повторный клик по той же колонке
	// дает DESC, клик по любой другой - ASC
	resp, err := svc.ListAdmin(context.Background(), &models.AdminListRequest{
		SortBy: "client_name",
		Order:  apptRepo.OrderAsc,
	})
	require.NoError(t, err)

	assert.Equal(t, apptRepo.OrderDesc, resp.NextOrder["client_name"])
	assert.Equal(t, apptRepo.OrderAsc, resp.NextOrder["start_at"])
	assert.Equal(t, apptRepo.OrderAsc, resp.NextOrder["phone"])

	// Текущая сортировка client_name DESC: следующий клик возвращает ASC
	resp, err = svc.ListAdmin(context.Background(), &models.AdminListRequest{
		SortBy: "client_name",
		Order:  apptRepo.OrderDesc,
	})
	require.NoError(t, err)

	assert.Equal(t, apptRepo.OrderAsc, resp.NextOrder["client_name"])
}

func TestListUpcoming(t *testing.T) {
	appt := &domain.Appointment{
		ID:         7,
		ClientName: "Олена",
		Service:    "beard",
		StartAt:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local),
		EndAt:      time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local),
	}
	repo := &stubAppointmentRepo{appointments: []*domain.Appointment{appt}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListUpcoming(context.Background())
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, int64(7), resp[0].ID)
	assert.Equal(t, "Борода", resp[0].ServiceLabel)
	assert.False(t, repo.gotNow.IsZero())
}

func TestDelete(t *testing.T) {
	repo := &stubAppointmentRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 15))
	assert.Equal(t, int64(15), repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &stubAppointmentRepo{deleteErr: apptRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 15)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := &stubAppointmentRepo{deleteErr: errors.New("disk on fire")}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 15)
	assert.ErrorIs(t, err, ErrInternal)
}
