package get_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HairdresserBot/internal/api/handlers"
	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	configRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/businessconfig"
)

const (
	msgConfigNotFound = "настройка не найдена"
)

// Response HTTP ответ с настройкой
type Response struct {
	Key   string `json:"key"`
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

// Handle GET /api/v1/config/{key}
// Для длительности слота отдается действующее значение с учетом дефолта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if key == domain.ConfigKeySlotDuration {
		duration := h.service.SlotDurationMinutes(r.Context())
		h.logger.Info("GET /config/{key} - Slot duration retrieved: %d", duration)
		handlers.RespondJSON(w, http.StatusOK, Response{
			Key:   key,
			Value: strconv.Itoa(duration),
		})
		return
	}

	value, err := h.service.GetRaw(r.Context(), key)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			h.logger.Warn("GET /config/{key} - Config not found: key=%s", key)
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /config/{key} - Failed to get config: key=%s, error=%v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config/{key} - Config retrieved: key=%s", key)
	handlers.RespondJSON(w, http.StatusOK, Response{Key: key, Value: value})
}
