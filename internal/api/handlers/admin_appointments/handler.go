package admin_appointments

import (
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /admin
// Query params: sort_by (optional), order (optional, asc|desc)
// Неизвестные значения сортировки сервис молча сводит к дефолту
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.AdminListRequest{
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
	}

	result, err := h.service.ListAdmin(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin - Failed to list appointments: sort_by=%q, order=%q, error=%v",
			req.SortBy, req.Order, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin - Appointments listed successfully: sort_by=%s, order=%s, count=%d",
		result.SortBy, result.Order, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
