package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/liftstats/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	lockKeyPrefix  = "liftstats-sync-lock||"
	DefaultLockTTL = 5 * time.Minute
	lockTTLMargin  = time.Minute
)

// LockTTL outlives a run bounded by syncTimeout, so the lock never expires under a running sync.
func LockTTL(syncTimeout time.Duration) time.Duration {
	if syncTimeout <= 0 {
		return DefaultLockTTL
	}
	return max(DefaultLockTTL, syncTimeout+lockTTLMargin)
}

// releaseScript deletes the lock only when it still holds our token,
// so an expired lock taken over by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares the per user sync lock between service instances and the CLI.
type RedisLocker struct {
	rdb redis.UniversalClient
	ttl time.Duration
	// token generator, replaced in tests
	newToken func() (string, error)
}

func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisLocker{
		rdb: rdb,
		ttl: ttl,
		newToken: func() (string, error) {
			return pkg.GenerateRandomString(24)
		},
	}
}

func LockKey(userID string) string {
	return lockKeyPrefix + userID
}

func (l *RedisLocker) TryLock(ctx context.Context, userID string) (func(), error) {
	token, err := l.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate lock token: %w", err)
	}

	key := LockKey(userID)
	acquired, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !acquired {
		return nil, ErrSyncInProgress
	}

	return func() {
		if err := releaseScript.Run(context.WithoutCancel(ctx), l.rdb, []string{key}, token).Err(); err != nil {
			log.Errorf("release sync lock %s: %s", key, err)
		}
	}, nil
}

// MemoryLocker is used when only one process syncs, e.g. the MCP server.
type MemoryLocker struct {
	mutex  sync.Mutex
	locked map[string]struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locked: map[string]struct{}{},
	}
}

func (l *MemoryLocker) TryLock(_ context.Context, userID string) (func(), error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if _, ok := l.locked[userID]; ok {
		return nil, ErrSyncInProgress
	}
	l.locked[userID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mutex.Lock()
			delete(l.locked, userID)
			l.mutex.Unlock()
		})
	}, nil
}
