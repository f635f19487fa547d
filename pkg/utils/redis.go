package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig controls redis client behavior. Keep it config-driven; defaults
// should be safe and conservative.
type RedisConfig struct {
	Addr string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	PingTimeout time.Duration
}

func (c RedisConfig) withDefaults() RedisConfig {
	out := c
	if out.DialTimeout <= 0 {
		out.DialTimeout = 3 * time.Second
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = 2 * time.Second
	}
	if out.WriteTimeout <= 0 {
		out.WriteTimeout = 2 * time.Second
	}
	if out.PoolSize <= 0 {
		out.PoolSize = 10
	}
	if out.MinIdleConns < 0 {
		out.MinIdleConns = 0
	}
	if out.PoolTimeout <= 0 {
		out.PoolTimeout = 4 * time.Second
	}
	if out.ConnMaxIdleTime <= 0 {
		out.ConnMaxIdleTime = 5 * time.Minute
	}
	if out.ConnMaxLifetime <= 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.PingTimeout <= 0 {
		out.PingTimeout = 2 * time.Second
	}
	return out
}

// OpenRedis initializes a Redis client and validates connectivity via PING.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	cfg = cfg.withDefaults()
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		DialTimeout:     cfg.DialTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

var editorLockReleaseScript = redis.NewScript(`
-- KEYS[1] = lock key
-- ARGV[1] = holder token
-- Delete only when the caller still holds the lock.
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// EditorLocks implements the one-active-editor-per-line rule across
// processes: a single-holder lock keyed by line id, with a TTL so an
// abandoned editor cannot hold a line forever.
type EditorLocks struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewEditorLocks(rdb *redis.Client, ttl time.Duration) *EditorLocks {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &EditorLocks{rdb: rdb, ttl: ttl}
}

func lockKey(lineID string) string { return "linedesk:editor_lock:" + lineID }

// Acquire attempts to take the lock for lineID on behalf of token. Returns
// false when another token already holds it.
func (e *EditorLocks) Acquire(ctx context.Context, lineID, token string) (bool, error) {
	if lineID == "" || token == "" {
		return false, fmt.Errorf("line id and token are required")
	}
	return e.rdb.SetNX(ctx, lockKey(lineID), token, e.ttl).Result()
}

// Held reports whether token currently holds the lock for lineID.
func (e *EditorLocks) Held(ctx context.Context, lineID, token string) (bool, error) {
	if lineID == "" || token == "" {
		return false, fmt.Errorf("line id and token are required")
	}
	v, err := e.rdb.Get(ctx, lockKey(lineID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == token, nil
}

// Release drops the lock if token still holds it; releasing a lock taken
// over by someone else (after TTL expiry) is a no-op.
func (e *EditorLocks) Release(ctx context.Context, lineID, token string) error {
	if lineID == "" || token == "" {
		return fmt.Errorf("line id and token are required")
	}
	_, err := editorLockReleaseScript.Run(ctx, e.rdb, []string{lockKey(lineID)}, token).Result()
	return err
}
