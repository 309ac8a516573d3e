package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"passeio/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Tour package caching, used by the public browse endpoints.

func (s *CacheService) CachePackage(ctx context.Context, pkg *models.TourPackage) error {
	return s.SetWithTTL(ctx, s.GenerateKey("package", "id", pkg.ID), pkg, 5*time.Minute)
}

func (s *CacheService) GetPackage(ctx context.Context, id string) (*models.TourPackage, error) {
	var pkg models.TourPackage
	found, err := s.Get(ctx, s.GenerateKey("package", "id", id), &pkg)
	if err != nil || !found {
		return nil, err
	}
	return &pkg, nil
}

func (s *CacheService) InvalidatePackage(ctx context.Context, id string) error {
	return s.Delete(ctx, s.GenerateKey("package", "id", id))
}

// FlushAll flushes all keys from the cache.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the Redis client connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
