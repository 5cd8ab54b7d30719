package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps each document as a plain string value, for setups where
// several front-ends on the same site share one local cache.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

func NewRedis(rdb *redis.Client, prefix string) *Redis {
	return &Redis{rdb: rdb, prefix: prefix}
}

func (s *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return true, decode(key, raw, dest)
}

func (s *Redis) Set(ctx context.Context, key string, value any) error {
	b, err := encode(key, value)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.prefix+key, b, 0).Err(); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Redis) Close() error { return s.rdb.Close() }
