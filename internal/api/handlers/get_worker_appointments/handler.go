package get_worker_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HairdresserBot/internal/api/handlers"
	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
)

const (
	msgInvalidWorkerID = "некорректный ID работника"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/appointments
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/appointments - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /workers/{id}/appointments - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetWorkerAppointments(r.Context(), workerID, date)
	if err != nil {
		h.logger.Error("GET /workers/{id}/appointments - Failed to get appointments: worker_id=%d, error=%v", workerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /workers/{id}/appointments - Appointments retrieved: worker_id=%d, date=%s, count=%d",
		workerID, dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
