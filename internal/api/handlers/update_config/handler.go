package update_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HairdresserBot/internal/api/handlers"
	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	configService "github.com/m04kA/SMC-HairdresserBot/internal/service/config"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidValue       = "недопустимое значение настройки"
)

// Request HTTP запрос на обновление настройки
type Request struct {
	Value string `json:"value"`
}

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config/{key}
// Длительность слота проходит через типизированный сеттер с валидацией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var err error
	if key == domain.ConfigKeySlotDuration {
		minutes, convErr := strconv.Atoi(req.Value)
		if convErr != nil {
			h.logger.Warn("PUT /config/{key} - Non-numeric slot duration %q", req.Value)
			handlers.RespondBadRequest(w, msgInvalidValue)
			return
		}
		err = h.service.SetSlotDurationMinutes(r.Context(), minutes)
	} else {
		err = h.service.SetRaw(r.Context(), key, req.Value)
	}

	if err != nil {
		if errors.Is(err, configService.ErrInvalidValue) {
			h.logger.Warn("PUT /config/{key} - Invalid value: key=%s, error=%v", key, err)
			handlers.RespondBadRequest(w, msgInvalidValue)
			return
		}
		h.logger.Error("PUT /config/{key} - Failed to update config: key=%s, error=%v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /config/{key} - Config updated: key=%s", key)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
