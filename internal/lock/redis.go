package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still holds our token, so a holder
// whose lease expired cannot release someone else's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisConfig struct {
	Prefix     string        // key prefix, default "oystraz:lock"
	TTL        time.Duration // lease length, default 30s
	RetryDelay time.Duration // wait between attempts, default 50ms
}

// Redis is a lease-based lock shared by every process using the same Redis.
// Leases expire after TTL, which must exceed the longest mutation.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	retry  time.Duration
}

func NewRedis(client redis.UniversalClient, cfg RedisConfig) *Redis {
	if cfg.Prefix == "" {
		cfg.Prefix = "oystraz:lock"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 50 * time.Millisecond
	}
	return &Redis{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		retry:  cfg.RetryDelay,
	}
}

func (r *Redis) redisKey(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Lock retries until the lease is acquired or ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	rk := r.redisKey(key)
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, rk, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock %s: %w", key, err)
		}
		if ok {
			return func() {
				// The caller's ctx may already be cancelled; release regardless.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = releaseScript.Run(ctx, r.client, []string{rk}, token).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Held reports whether someone currently holds key.
func (r *Redis) Held(ctx context.Context, key string) (bool, error) {
	_, err := r.client.Get(ctx, r.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis lock get %s: %w", key, err)
	}
	return true, nil
}
