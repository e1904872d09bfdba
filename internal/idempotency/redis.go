package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/CafeBooker/internal/domain"
)

const (
	keyPrefix  = "idempotency:booking:"
	DefaultTTL = 24 * time.Hour
)

const (
	statusProcessing = "processing"
	statusSuccess    = "success"
)

type redisState struct {
	Status        string `json:"status"`
	ReservationID string `json:"reservation_id,omitempty"`
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(k string) string {
	return keyPrefix + k
}

func (s *RedisStore) Reserve(ctx context.Context, idempotencyKey string) (string, error) {
	k := s.key(idempotencyKey)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		data, err := s.client.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			raw, _ := json.Marshal(redisState{Status: statusProcessing})
			_, err = s.client.SetArgs(ctx, k, raw, redis.SetArgs{Mode: "NX", TTL: s.ttl}).Result()
			if errors.Is(err, redis.Nil) {
				// кто-то успел раньше, перечитываем
				continue
			}
			if err != nil {
				return "", fmt.Errorf("redis set: %w", err)
			}
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("redis get: %w", err)
		}

		var state redisState
		if err = json.Unmarshal(data, &state); err != nil {
			return "", fmt.Errorf("redis unmarshal: %w", err)
		}

		switch state.Status {
		case statusSuccess:
			return state.ReservationID, nil
		case statusProcessing:
			return "", domain.ErrRequestInProgress
		default:
			raw, _ := json.Marshal(redisState{Status: statusProcessing})
			if err = s.client.Set(ctx, k, raw, s.ttl).Err(); err != nil {
				return "", fmt.Errorf("redis set: %w", err)
			}
			return "", nil
		}
	}
}

func (s *RedisStore) Complete(ctx context.Context, idempotencyKey, reservationID string) error {
	raw, err := json.Marshal(redisState{Status: statusSuccess, ReservationID: reservationID})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(idempotencyKey), raw, s.ttl).Err()
}

func (s *RedisStore) Release(ctx context.Context, idempotencyKey string) error {
	return s.client.Del(ctx, s.key(idempotencyKey)).Err()
}
