package lock

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"phoenix-booking-service/config"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	redsyncredis "github.com/go-redsync/redsync/v4/redis"
)

// Release gives back everything a single Acquire call took.
type Release func(ctx context.Context)

// Locker serialises the availability check and the booking write for the
// same capacity bucket across service replicas.
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (Release, error)
}

// CapacityKey names the bucket a room line competes for. Date windows are left
// out: two different windows may still overlap, so they must share a lock.
func CapacityKey(hotelID, roomTypeID string) string {
	return fmt.Sprintf("capacity:%s:%s", hotelID, roomTypeID)
}

// Keys returns the keys deduplicated and sorted so every caller locks in the
// same order.
func Keys(keys ...string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type redisLocker struct {
	rs  *redsync.Redsync
	cfg *config.LockConfig
	log log.Logger
}

func NewRedisLocker(pool redsyncredis.Pool, cfg *config.LockConfig, log log.Logger) Locker {
	return &redisLocker{
		rs:  redsync.New(pool),
		cfg: cfg,
		log: log,
	}
}

func (l *redisLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	keys = Keys(keys...)
	held := make([]*redsync.Mutex, 0, len(keys))

	release := func(ctx context.Context) {
		for i := len(held) - 1; i >= 0; i-- {
			if _, err := held[i].UnlockContext(ctx); err != nil {
				l.log.Warn(ctx, "failed to release lock", held[i].Name(), err)
			}
		}
	}

	for _, key := range keys {
		m := l.rs.NewMutex(key,
			redsync.WithExpiry(l.cfg.Expiry),
			redsync.WithTries(l.cfg.Tries),
			redsync.WithRetryDelay(l.cfg.RetryDelay),
		)
		if err := m.LockContext(ctx); err != nil {
			l.log.Error(ctx, "failed to acquire lock", key, err)
			release(ctx)
			return nil, errors.UpstreamUnavailable("capacity lock unavailable")
		}
		held = append(held, m)
	}

	return release, nil
}

type noopLocker struct{}

// NewNoopLocker disables serialisation; concurrent requests may both pass the
// availability check for the last room.
func NewNoopLocker() Locker {
	return noopLocker{}
}

func (noopLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	return func(context.Context) {}, nil
}
