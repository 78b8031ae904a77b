package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crewcall-bot/crewcall/internal/models"
	"github.com/redis/go-redis/v9"
)

// snapshotKey is the single key the whole snapshot document lives under
const snapshotKey = "registry:snapshot"

// RedisConfig holds configuration for the Redis-backed store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisStore implements the Store interface as a single JSON document in
// one Redis key. A SET replaces the document atomically, which gives the
// same no-torn-reads contract as the file backend's rename.
type redisStore struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed snapshot store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
	}, nil
}

// Load reads and parses the snapshot document
func (s *redisStore) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if snapshot.Version != models.SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, snapshot.Version)
	}

	if snapshot.Communities == nil {
		snapshot.Communities = make(map[string]*models.Community)
	}

	return &snapshot, nil
}

// Save writes the snapshot document
func (s *redisStore) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}
