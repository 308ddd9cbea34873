package blocked_dates

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/service/blockeddates"
)

const (
	msgBadDateFormat       = "некоректний формат дати, очікується YYYY-MM-DD"
	msgMissingRange        = "вкажіть обидві дати діапазону"
	msgInvalidRange        = "дата початку пізніша за дату кінця"
	msgInvalidID           = "некоректний ID блокування"
	msgBlockedDateNotFound = "день не знайдено"
	msgBlockedDateDeleted  = "вихідний скасовано"
)

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /admin/blocked_dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked_dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked_dates - Blocked dates listed successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleCreate POST /admin/blocked_dates
// Form params: date_from, date_to (YYYY-MM-DD), reason (optional)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/blocked_dates - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	dateFromStr := r.PostFormValue("date_from")
	dateToStr := r.PostFormValue("date_to")
	reason := r.PostFormValue("reason")

	serviceReq, err := ToServiceRequest(dateFromStr, dateToStr, reason)
	if err != nil {
		h.logger.Warn("POST /admin/blocked_dates - Invalid date format: date_from=%q, date_to=%q, error=%v",
			dateFromStr, dateToStr, err)
		handlers.RespondBadRequest(w, msgBadDateFormat)
		return
	}

	added, err := h.service.CreateRange(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrMissingRange):
			h.logger.Warn("POST /admin/blocked_dates - Missing range bounds")
			handlers.RespondBadRequest(w, msgMissingRange)

		case errors.Is(err, blockeddates.ErrInvalidRange):
			h.logger.Warn("POST /admin/blocked_dates - Invalid range: date_from=%s, date_to=%s",
				dateFromStr, dateToStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /admin/blocked_dates - Failed to block range: date_from=%s, date_to=%s, error=%v",
				dateFromStr, dateToStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked_dates - Range blocked successfully: date_from=%s, date_to=%s, added=%d",
		dateFromStr, dateToStr, added)
	handlers.RespondJSON(w, http.StatusCreated, &CreatedResponse{
		Message: fmt.Sprintf("заблоковано днів: %d", added),
		Added:   added,
	})
}

// HandleDelete POST /admin/blocked_dates/delete/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	idStr := vars["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/blocked_dates/delete/{id} - Invalid blocked date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrBlockedDateNotFound):
			h.logger.Warn("POST /admin/blocked_dates/delete/{id} - Blocked date not found: id=%d", id)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)

		default:
			h.logger.Error("POST /admin/blocked_dates/delete/{id} - Failed to delete blocked date: id=%d, error=%v",
				id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked_dates/delete/{id} - Blocked date deleted successfully: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgBlockedDateDeleted)
}
