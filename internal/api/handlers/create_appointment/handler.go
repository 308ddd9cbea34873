package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	createAppointment "github.com/m04kA/BRB-BookingService/internal/usecase/create_appointment"
)

const (
	msgMissingFields  = "будь ласка, заповніть усі поля"
	msgBadFormat      = "некоректний формат дати або часу"
	msgBadPhone       = "номер телефону має містити лише цифри (10, 12 або 13 символів)"
	msgPastTime       = "не можна записатися на минулий час"
	msgSlotTaken      = "обраний час вже зайнятий, оберіть інший слот"
	msgDateBlocked    = "обраний день недоступний для запису"
	msgCreatedWithSMS = "дякуємо! Ваш запис підтверджено, SMS надіслано"
	msgCreatedNoSMS   = "дякуємо! Ваш запис підтверджено"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleForm GET /book
// Отдает каталог услуг для формы записи
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, NewBookingFormResponse())
}

// Handle POST /book
// Form params: client_name, phone, date (YYYY-MM-DD), time (HH:MM), service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /book - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgBadFormat)
		return
	}

	clientName := r.PostFormValue("client_name")
	phone := r.PostFormValue("phone")
	dateStr := r.PostFormValue("date")
	timeStr := r.PostFormValue("time")
	service := r.PostFormValue("service")

	useCaseReq, err := ToUseCaseRequest(clientName, phone, dateStr, timeStr, service)
	if err != nil {
		h.logger.Warn("POST /book - Invalid date/time format: date=%q, time=%q, error=%v",
			dateStr, timeStr, err)
		handlers.RespondBadRequest(w, msgBadFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMissingField):
			h.logger.Warn("POST /book - Missing fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrBadPhone):
			h.logger.Warn("POST /book - Invalid phone: phone=%q", phone)
			handlers.RespondBadRequest(w, msgBadPhone)

		case errors.Is(err, createAppointment.ErrPastTime):
			h.logger.Warn("POST /book - Past time requested: date=%s, time=%s", dateStr, timeStr)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createAppointment.ErrDateBlocked):
			h.logger.Warn("POST /book - Date is blocked: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /book - Slot already taken: date=%s, time=%s", dateStr, timeStr)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /book - Failed to create appointment: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgCreatedWithSMS
	if !result.SMSSent {
		message = msgCreatedNoSMS
	}

	h.logger.Info("POST /book - Appointment created successfully: id=%d, date=%s, time=%s, sms_sent=%v",
		result.ID, dateStr, timeStr, result.SMSSent)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(message, result))
}
