package viewgate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectionTimeout bounds the startup connectivity check.
const connectionTimeout = 5 * time.Second

// RedisStore keeps viewed sets in Redis, one set per visitor ID. It lets
// the gate survive restarts and multiple service instances.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func viewedKey(visitorID string) string {
	return "viewed:" + visitorID
}

// Viewed implements Store.
func (s *RedisStore) Viewed(ctx context.Context, visitorID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, viewedKey(visitorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read viewed set: %w", err)
	}
	return ids, nil
}

// Record implements Store. SADD is idempotent, matching the Store contract.
func (s *RedisStore) Record(ctx context.Context, visitorID, articleID string) error {
	if err := s.client.SAdd(ctx, viewedKey(visitorID), articleID).Err(); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
