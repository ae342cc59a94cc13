package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenharvest/agroshop/internal/config"
)

const redisKeyPrefix = "session:"

// RedisStore хранит состояния сессий в Redis в виде JSON со временем жизни.
type RedisStore struct {
	db *redis.Client
}

// NewRedisStore подключается к Redis и возвращает хранилище сессий.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		Username:     cfg.User,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db}, nil
}

// Load возвращает состояние сессии или ErrSessionNotFound.
func (s *RedisStore) Load(ctx context.Context, id string) (*State, error) {
	const op = "session.RedisStore.Load"
	val, err := s.db.Get(ctx, redisKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	st := newState(id)
	if err := json.Unmarshal([]byte(val), st); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return st, nil
}

// Save сохраняет состояние сессии с указанным TTL.
func (s *RedisStore) Save(ctx context.Context, st *State, ttl time.Duration) error {
	const op = "session.RedisStore.Save"
	jsonData, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Set(ctx, redisKeyPrefix+st.ID, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет состояние сессии.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	const op = "session.RedisStore.Delete"
	if err := s.db.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
