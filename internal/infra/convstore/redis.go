package convstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
)

const redisKeyPrefix = "conv:"

// RedisStore хранит состояния диалогов в Redis
// TTL выставляется на каждый Put, протухшие диалоги удаляет сам Redis
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewRedisStore создает хранилище диалогов поверх Redis
func NewRedisStore(client *redis.Client, ttl time.Duration, log Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (s *RedisStore) Get(ctx context.Context, phoneNumber string) (*domain.ConversationState, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+phoneNumber).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("convstore: redis get: %w", err)
	}

	var state domain.ConversationState
	if err := json.Unmarshal(data, &state); err != nil {
		// Битое состояние лечим как отсутствующее - диалог начнется заново
		s.log.Warn("convstore: dropping corrupted state for %s: %v", phoneNumber, err)
		if delErr := s.client.Del(ctx, redisKeyPrefix+phoneNumber).Err(); delErr != nil {
			s.log.Error("convstore: failed to delete corrupted state for %s: %v", phoneNumber, delErr)
		}
		return nil, ErrStateNotFound
	}

	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, state *domain.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("convstore: marshal state: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+state.PhoneNumber, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("convstore: redis set: %w", err)
	}

	return nil
}

func (s *RedisStore) Remove(ctx context.Context, phoneNumber string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+phoneNumber).Err(); err != nil {
		return fmt.Errorf("convstore: redis del: %w", err)
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
