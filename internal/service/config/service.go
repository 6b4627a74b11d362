package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	configRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/businessconfig"
)

// Service сервис настроек салона
// Единственная настройка с бизнес-логикой - длительность слота: она управляет
// и генерацией свободных слотов, и длительностью создаваемых записей
type Service struct {
	configRepo      ConfigRepository
	defaultDuration int
	logger          Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(configRepo ConfigRepository, defaultDuration int, logger Logger) *Service {
	if defaultDuration < domain.MinSlotDurationMinutes {
		defaultDuration = domain.DefaultSlotDurationMinutes
	}
	return &Service{
		configRepo:      configRepo,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// SlotDurationMinutes возвращает действующую длительность слота в минутах
// Отсутствующее или некорректное значение в БД заменяется дефолтным:
// выдача слотов не должна падать из-за битой настройки
func (s *Service) SlotDurationMinutes(ctx context.Context) int {
	raw, err := s.configRepo.GetByKey(ctx, domain.ConfigKeySlotDuration)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("SlotDurationMinutes: failed to get config: %v", err)
		}
		return s.defaultDuration
	}

	duration, err := strconv.Atoi(raw)
	if err != nil || duration < domain.MinSlotDurationMinutes {
		s.logger.Warn("SlotDurationMinutes: invalid stored value %q, using default %d",
			raw, s.defaultDuration)
		return s.defaultDuration
	}

	return duration
}

// SetSlotDurationMinutes сохраняет длительность слота
func (s *Service) SetSlotDurationMinutes(ctx context.Context, minutes int) error {
	if minutes < domain.MinSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be at least %d minute(s)",
			ErrInvalidValue, domain.MinSlotDurationMinutes)
	}

	if err := s.configRepo.Upsert(ctx, domain.ConfigKeySlotDuration, strconv.Itoa(minutes)); err != nil {
		s.logger.Error("SetSlotDurationMinutes: failed to upsert config: %v", err)
		return fmt.Errorf("%w: failed to save slot duration: %v", ErrInternal, err)
	}

	s.logger.Info("SetSlotDurationMinutes: slot duration set to %d minutes", minutes)
	return nil
}

// GetRaw возвращает произвольную настройку по ключу
func (s *Service) GetRaw(ctx context.Context, key string) (string, error) {
	value, err := s.configRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return "", configRepo.ErrConfigNotFound
		}
		s.logger.Error("GetRaw: failed to get config key=%s: %v", key, err)
		return "", fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	return value, nil
}

// SetRaw сохраняет произвольную настройку по ключу
func (s *Service) SetRaw(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidValue)
	}

	if err := s.configRepo.Upsert(ctx, key, value); err != nil {
		s.logger.Error("SetRaw: failed to upsert config key=%s: %v", key, err)
		return fmt.Errorf("%w: failed to save config: %v", ErrInternal, err)
	}

	return nil
}
