package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dreamsourcil/booking/config"
	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisLocker holds a short-lived advisory lock on one (date, start) slot
// while a commit is in flight. It narrows the race window between service
// instances sharing a store; the booking service's own mutex remains the
// correctness guarantee within a process.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(cfg config.RedisConfig) *RedisLocker {
	return &RedisLocker{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (l *RedisLocker) AcquireSlotLock(ctx context.Context, date domain.Date, start domain.TimeOfDay, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, slotLockKey(date, start), "locked", ttl).Result()
}

func (l *RedisLocker) ReleaseSlotLock(ctx context.Context, date domain.Date, start domain.TimeOfDay) error {
	return l.client.Del(ctx, slotLockKey(date, start)).Err()
}

func slotLockKey(date domain.Date, start domain.TimeOfDay) string {
	return fmt.Sprintf("lock:slot:%s:%s", date, start)
}
