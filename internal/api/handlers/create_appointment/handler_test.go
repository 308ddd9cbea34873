package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/BRB-BookingService/internal/usecase/create_appointment"
)

type stubUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postForm(handler *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"client_name": {"Тарас"},
		"phone":       {"0991234567"},
		"date":        {"2026-09-15"},
		"time":        {"14:00"},
		"service":     {"haircut"},
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{
		resp: &createAppointment.Response{
			ID:              42,
			ClientName:      "Тарас",
			Phone:           "0991234567",
			Service:         "haircut",
			ServiceLabel:    "Стрижка",
			StartAt:         time.Date(2026, 9, 15, 14, 0, 0, 0, time.Local),
			EndAt:           time.Date(2026, 9, 15, 15, 0, 0, 0, time.Local),
			DurationMinutes: 60,
			SMSSent:         true,
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := postForm(handler, validForm())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(42), resp.Appointment.ID)
	assert.Equal(t, "2026-09-15", resp.Appointment.Date)
	assert.Equal(t, "14:00", resp.Appointment.StartTime)
	assert.Equal(t, "15:00", resp.Appointment.EndTime)
	assert.True(t, resp.Appointment.SMSSent)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "0991234567", uc.gotReq.Phone)
}

func TestHandle_BadDateFormat(t *testing.T) {
	uc := &stubUseCase{}
	handler := NewHandler(uc, nopLogger{})

	form := validForm()
	form.Set("date", "15.09.2026")

	rec := postForm(handler, form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq, "use case must not be called")
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing field", err: createAppointment.ErrMissingField, wantStatus: http.StatusBadRequest},
		{name: "bad phone", err: createAppointment.ErrBadPhone, wantStatus: http.StatusBadRequest},
		{name: "past time", err: createAppointment.ErrPastTime, wantStatus: http.StatusBadRequest},
		{name: "date blocked", err: createAppointment.ErrDateBlocked, wantStatus: http.StatusBadRequest},
		{name: "slot taken", err: createAppointment.ErrSlotTaken, wantStatus: http.StatusConflict},
		{name: "internal", err: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := postForm(handler, validForm())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleForm_ReturnsCatalog(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/book", nil)
	rec := httptest.NewRecorder()

	handler.HandleForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp BookingFormResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 3)
	assert.Equal(t, "haircut", resp.Services[0].Tag)
	assert.Equal(t, 60, resp.Services[0].DurationMinutes)
}
