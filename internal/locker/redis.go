package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "laundry:claim:"

var ErrLockTimeout = errors.New("claim lock not acquired")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type RedisConfig struct {
	TTL          time.Duration
	PollInterval time.Duration
	WaitTimeout  time.Duration
}

// Redis holds claim locks across service instances. A lock expires after TTL
// if its holder dies without releasing it.
type Redis struct {
	client *redis.Client
	cfg    RedisConfig
	logger logger.Logger
}

func NewRedis(client *redis.Client, cfg RedisConfig, logger logger.Logger) *Redis {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 25 * time.Millisecond
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = 5 * time.Second
	}

	return &Redis{client: client, cfg: cfg, logger: logger}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, r.cfg.WaitTimeout)
	defer cancel()

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(waitCtx, redisKey, token, r.cfg.TTL).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("redis setnx: %w", err)
		}
		if ok {
			return r.unlockFunc(context.WithoutCancel(ctx), redisKey, token), nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-ticker.C:
		}
	}
}

func (r *Redis) unlockFunc(ctx context.Context, redisKey, token string) func() {
	return func() {
		if err := releaseScript.Run(ctx, r.client, []string{redisKey}, token).Err(); err != nil {
			r.logger.Error("failed to release claim lock",
				logger.String("key", redisKey),
				logger.String("error", err.Error()),
			)
		}
	}
}
