package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HairdresserBot/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-HairdresserBot/internal/usecase/get_available_slots"
)

const (
	msgInvalidWorkerID = "некорректный ID работника"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast      = "дата в прошлом"
	msgWorkerNotFound  = "работник не найден"
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

// Handle GET /api/v1/workers/{workerId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/available-slots - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /workers/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(workerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /workers/{id}/available-slots - Date in past: worker_id=%d, date=%s", workerID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrWorkerNotFound):
			h.logger.Warn("GET /workers/{id}/available-slots - Worker not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWorkerID)

		default:
			h.logger.Error("GET /workers/{id}/available-slots - Failed to get slots: worker_id=%d, date=%s, error=%v",
				workerID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/available-slots - Slots retrieved successfully: worker_id=%d, date=%s, slots_count=%d",
		workerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
