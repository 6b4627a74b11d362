package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HairdresserBot/internal/api/handlers"
	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments"
	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidUserID        = "некорректный ID пользователя"
	msgAppointmentNotFound  = "запись не найдена"
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

// Handle POST /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.UserID <= 0 {
		h.logger.Warn("POST /appointments/{id}/cancel - Invalid user ID: %d", req.UserID)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), appointmentID, req.UserID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/cancel - Appointment not found: appointment_id=%d, user_id=%d",
				appointmentID, req.UserID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("POST /appointments/{id}/cancel - Failed to cancel: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/cancel - Appointment cancelled: appointment_id=%d, user_id=%d",
		appointmentID, req.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
