package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if this instance still holds it, so an
// expired-and-reacquired lock is never released by the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Mutex is a best-effort cluster-wide lock (SET NX PX). It serializes the
// expiry sweep across instances; the sweep itself is idempotent, so the
// occasional double-fire on lock expiry is harmless.
type Mutex struct {
	client *Client
	key    string
	ttl    time.Duration
}

// NewMutex creates a lock on the given key with the given TTL. The TTL must
// comfortably exceed one sweep's duration.
func NewMutex(client *Client, key string, ttl time.Duration) *Mutex {
	return &Mutex{client: client, key: key, ttl: ttl}
}

// TryLock attempts to acquire the lock without blocking. When ok is true the
// returned release func must be called; it is safe to call once.
func (m *Mutex) TryLock(ctx context.Context) (release func(), ok bool, err error) {
	token := uuid.NewString()
	ok, err = m.client.SetNX(ctx, m.key, token, m.ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}
	release = func() {
		// Release on a fresh context: the caller's may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, m.client, []string{m.key}, token).Err()
	}
	return release, true, nil
}
