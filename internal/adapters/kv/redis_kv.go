package kv

import (
	"colis-service/internal/platform/obs"
	"colis-service/internal/ports"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var _ ports.KeyValueStorage = (*RedisStore)(nil)

// RedisStore keeps values as plain Redis strings under Prefix+key.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

// DialRedis parses url, connects and pings the server.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "kv.redis.Get")(&err)

	if s.Client == nil {
		return "", false, errors.New("redis kv: client is nil")
	}

	value, err := s.Client.Get(ctx, s.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get redis key=%q: %w", key, err)
	}

	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value string) (err error) {
	defer obs.Time(ctx, "kv.redis.Set")(&err)

	if s.Client == nil {
		return errors.New("redis kv: client is nil")
	}

	if err := s.Client.Set(ctx, s.Prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set redis key=%q: %w", key, err)
	}

	return nil
}
