package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ivanKorotkov735/cursor/internal/domain"
	"github.com/ivanKorotkov735/cursor/internal/usecase"
)

const redisKeyPrefix = "verify:result:"

// Redis caches results in a shared redis instance so replicas of the
// service reuse each other's work.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string, db int) (*Redis, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (*domain.VerificationResult, bool, error) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var value domain.VerificationResult
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, false, err
	}
	return &value, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, value domain.VerificationResult, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+key, payload, ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

var _ usecase.VerificationCache = (*Redis)(nil)
