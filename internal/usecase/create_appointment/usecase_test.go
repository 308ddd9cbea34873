package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/blockeddate"
)

type stubAppointmentRepo struct {
	overlapping int
	countErr    error
	createErr   error
	created     *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *appt
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	s.created = &created
	return &created, nil
}

func (s *stubAppointmentRepo) CountOverlapping(_ context.Context, _, _ time.Time) (int, error) {
	return s.overlapping, s.countErr
}

type stubBlockedRepo struct {
	blocked bool
	err     error
}

func (s *stubBlockedRepo) GetByDate(_ context.Context, date time.Time) (*domain.BlockedDate, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.blocked {
		return &domain.BlockedDate{ID: 1, Date: date}, nil
	}
	return nil, blockedRepo.ErrBlockedDateNotFound
}

type stubSMSSender struct {
	err   error
	phone string
	text  string
}

func (s *stubSMSSender) Send(_ context.Context, phone, text string) error {
	s.phone = phone
	s.text = text
	return s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(apptRepo *stubAppointmentRepo, blocked *stubBlockedRepo, sms *stubSMSSender, now time.Time) *UseCase {
	uc := NewUseCase(apptRepo, blocked, sms, stubTxManager{}, nil, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientName: "Тарас",
		Phone:      "0991234567",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
		StartTime:  "14:00",
		Service:    "haircut",
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	apptRepo := &stubAppointmentRepo{}
	sms := &stubSMSSender{}
	uc := newTestUseCase(apptRepo, &stubBlockedRepo{}, sms, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Стрижка", resp.ServiceLabel)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 0, 0, 0, time.Local), resp.StartAt)
	assert.Equal(t, time.Date(2026, 9, 15, 15, 0, 0, 0, time.Local), resp.EndAt)
	assert.True(t, resp.SMSSent)

	// SMS ушла на номер клиента с датой в формате dd.mm.yyyy
	assert.Equal(t, "0991234567", sms.phone)
	assert.Contains(t, sms.text, "Тарас")
	assert.Contains(t, sms.text, "15.09.2026 14:00")
}

func TestExecute_SMSFailureDoesNotFailBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	sms := &stubSMSSender{err: errors.New("gateway down")}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedRepo{}, sms, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.False(t, resp.SMSSent)
}

func TestExecute_PastTime(t *testing.T) {
	// Запрос на 09:00 сегодня при now=12:00
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedRepo{}, &stubSMSSender{}, now)

	req := validRequest()
	req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	req.StartTime = "09:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestExecute_StartAtNowIsAllowed(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedRepo{}, &stubSMSSender{}, now)

	req := validRequest()
	req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	req.StartTime = "14:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubAppointmentRepo{overlapping: 1}, &stubBlockedRepo{}, &stubSMSSender{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DateBlocked(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedRepo{blocked: true}, &stubSMSSender{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestExecute_MissingFields(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubBlockedRepo{}, &stubSMSSender{}, now)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "no client name", mutate: func(req *Request) { req.ClientName = "" }},
		{name: "no phone", mutate: func(req *Request) { req.Phone = "" }},
		{name: "no date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "no start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "no service", mutate: func(req *Request) { req.Service = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "10 digits", phone: "0991234567"},
		{name: "12 digits", phone: "380991234567"},
		{name: "13 digits", phone: "3800991234567"},
		{name: "too short", phone: "12345", wantErr: true},
		{name: "11 digits", phone: "09912345678", wantErr: true},
		{name: "with plus", phone: "+380991234567", wantErr: true},
		{name: "with letters", phone: "09912345ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePhone(tt.phone)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadPhone)
				return
			}
			assert.NoError(t, err)
		})
	}
}
