package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces session keys inside a shared Redis database.
const DefaultRedisPrefix = "newsdesk:session:"

type RedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) key(k string) string { return r.prefix + k }

func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return v, nil
}

// GetMany relies on MGET, which reads all keys atomically.
func (r *RedisRepository) GetMany(ctx context.Context, keys ...string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	values, err := r.rdb.MGet(ctx, full...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata%v: %w", keys, err)
	}
	for i, v := range values {
		if s, ok := v.(string); ok {
			result[keys[i]] = []byte(s)
		}
	}
	return result, nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// SetMany relies on MSET, which Redis applies atomically.
func (r *RedisRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	pairs := make([]any, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, r.key(k), v)
	}
	if err := r.rdb.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete metadata%v: %w", keys, err)
	}
	return nil
}

func (r *RedisRepository) List(ctx context.Context) (map[string][]byte, error) {
	keys, err := r.scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}

	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		result[strings.TrimPrefix(keys[i], r.prefix)] = []byte(s)
	}
	return result, nil
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	keys, err := r.scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}

func (r *RedisRepository) scan(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
