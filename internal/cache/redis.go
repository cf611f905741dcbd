package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"medsite-generator/internal/common/config"
	stderrors "medsite-generator/internal/common/errors"
)

// RedisStore backs one region with a shared Redis connection. Every key is
// prefixed with the region name so Clear only touches its own namespace.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
}

// NewRedisStore wraps client as the store for one region.
func NewRedisStore(client *redis.Client, region Region, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: string(region) + ":",
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, stderrors.NewCacheUnavailableError(fmt.Errorf("redis get: %w", err))
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return stderrors.NewCacheUnavailableError(fmt.Errorf("redis set: %w", err))
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return stderrors.NewCacheUnavailableError(fmt.Errorf("redis del: %w", err))
	}
	return nil
}

// Clear deletes only this region's keys, scanning by prefix.
func (s *RedisStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis clear: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	return nil
}

func (s *RedisStore) Len(ctx context.Context) (int, error) {
	count := 0
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("redis scan: %w", err)
	}
	return count, nil
}

// NewRedisRegions builds the three region stores over one shared client.
func NewRedisRegions(client *redis.Client, ttl time.Duration) *Regions {
	return &Regions{
		Classification: NewRedisStore(client, RegionClassification, ttl),
		Content:        NewRedisStore(client, RegionContent, ttl),
		Templates:      NewRedisStore(client, RegionTemplates, ttl),
	}
}
