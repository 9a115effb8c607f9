package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const (
	redisGamePrefix = "t2048:game:"
	redisBestPrefix = "t2048:best:"
)

// keepMax stores ARGV[1] at KEYS[1] unless the stored value is larger.
var keepMax = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local val = tonumber(ARGV[1])
if val > cur then
	redis.call("SET", KEYS[1], val)
	return val
end
return cur
`)

// RedisStore keeps saved games and best scores in Redis.
type RedisStore struct {
	client *redis.Client
}

var _ t2048.SaveStore = (*RedisStore)(nil)

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// LoadGame returns the saved game under key, or t2048.ErrNoSave.
func (r *RedisStore) LoadGame(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisGamePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, t2048.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game %q: %w", key, err)
	}
	return data, nil
}

// SaveGame stores data under key, replacing any previous save.
func (r *RedisStore) SaveGame(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, redisGamePrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", key, err)
	}
	return nil
}

// DeleteGame removes the save under key.
func (r *RedisStore) DeleteGame(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisGamePrefix+key).Err(); err != nil {
		return fmt.Errorf("storage: cannot delete game %q: %w", key, err)
	}
	return nil
}

// LoadBest returns the best score under key, or 0.
func (r *RedisStore) LoadBest(ctx context.Context, key string) (int, error) {
	val, err := r.client.Get(ctx, redisBestPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score %q: %w", key, err)
	}

	best, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt best score %q: %w", key, err)
	}
	return best, nil
}

// SaveBest records best under key. A lower value never replaces a higher one.
func (r *RedisStore) SaveBest(ctx context.Context, key string, best int) error {
	if err := keepMax.Run(ctx, r.client, []string{redisBestPrefix + key}, best).Err(); err != nil {
		return fmt.Errorf("storage: cannot save best score %q: %w", key, err)
	}
	return nil
}
