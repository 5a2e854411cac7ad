package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"doc_ingest/internal/domain"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisLocker hands out exclusive run locks. A held lock is refreshed every
// half TTL until it is released, so a crashed runner frees it after one TTL.
type RedisLocker struct {
	client *redis.Client
	locker *redislock.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisLocker(ctx context.Context, cfg Config, logger *slog.Logger) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &RedisLocker{
		client: client,
		locker: redislock.New(client),
		ttl:    ttl,
		logger: logger.With("component", "lock"),
	}, nil
}

// Acquire fails with domain.ErrRunInProgress when the key is held elsewhere.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lk, err := l.locker.Obtain(ctx, key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunInProgress, key)
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock: %w", err)
	}

	refreshCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.keepAlive(refreshCtx, lk, key)
	}()

	release := func() {
		cancel()
		<-done
		releaseCtx, releaseCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer releaseCancel()
		if err := lk.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn("failed to release lock", "key", key, "error", err)
		}
	}

	l.logger.Debug("lock acquired", "key", key, "ttl", l.ttl)
	return release, nil
}

func (l *RedisLocker) keepAlive(ctx context.Context, lk *redislock.Lock, key string) {
	ticker := time.NewTicker(l.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := lk.Refresh(ctx, l.ttl, nil); err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to refresh lock", "key", key, "error", err)
				return
			}
		}
	}
}

func (l *RedisLocker) Close() error {
	return l.client.Close()
}
