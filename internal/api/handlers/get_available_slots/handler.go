package get_available_slots

import (
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /available_slots
// Query params: service (required), date (required, YYYY-MM-DD)
// Endpoint опрашивается виджетом на каждое изменение формы, поэтому любая
// проблема (нет параметров, кривая дата, ошибка внутри) выдается как пустой
// список со статусом 200 - виджет просто покажет "нет свободных слотов"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	service := r.URL.Query().Get("service")
	dateStr := r.URL.Query().Get("date")

	if service == "" || dateStr == "" {
		h.logger.Warn("GET /available_slots - Missing params: service=%q, date=%q", service, dateStr)
		handlers.RespondJSON(w, http.StatusOK, []string{})
		return
	}

	useCaseReq, err := ToUseCaseRequest(service, dateStr)
	if err != nil {
		h.logger.Warn("GET /available_slots - Invalid date format: %v", err)
		handlers.RespondJSON(w, http.StatusOK, []string{})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /available_slots - Failed to get slots: service=%s, date=%s, error=%v",
			service, dateStr, err)
		handlers.RespondJSON(w, http.StatusOK, []string{})
		return
	}

	h.logger.Info("GET /available_slots - Slots retrieved successfully: service=%s, date=%s, slots_count=%d",
		service, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
