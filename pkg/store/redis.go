package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

// redisKeyPrefix namespaces layout entries in a shared Redis instance.
const redisKeyPrefix = "solis:layout:"

// RedisStore is a Redis-backed layout store for multi-instance server
// deployments. Layouts are stored as JSON values under solis:layout:<id>.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client}, nil
}

// List returns all saved layouts, newest first.
func (s *RedisStore) List(ctx context.Context) ([]SavedLayout, error) {
	var layouts []SavedLayout

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue // Deleted between scan and get
			}
			return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read layout %s", iter.Val())
		}
		var l SavedLayout
		if err := json.Unmarshal(data, &l); err != nil {
			continue
		}
		layouts = append(layouts, l)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "scan layouts")
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].CreatedAt.After(layouts[j].CreatedAt)
	})
	return layouts, nil
}

// Get retrieves a saved layout by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (SavedLayout, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return SavedLayout{}, notFound(id)
	}
	if err != nil {
		return SavedLayout{}, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read layout %s", id)
	}

	var l SavedLayout
	if err := json.Unmarshal(data, &l); err != nil {
		return SavedLayout{}, fmt.Errorf("parse layout %s: %w", id, err)
	}
	return l, nil
}

// Put stores a saved layout.
func (s *RedisStore) Put(ctx context.Context, layout SavedLayout) error {
	data, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+layout.ID, data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "write layout %s", layout.ID)
	}
	return nil
}

// Delete removes a saved layout.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "delete layout %s", id)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ LayoutStore = (*RedisStore)(nil)
