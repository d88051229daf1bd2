package redis

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meddesk/clinic-api/logger"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// DoctorListKey caches the unfiltered public doctor directory.
const DoctorListKey = "doctors:all"

// InitRedis connects the cache client. The cache is optional: when
// REDIS_ADDR is unset the service runs without it.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Log.Warn("REDIS_ADDR is not set, doctor directory cache disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		logger.Log.WithError(err).Warn("Failed to connect to Redis, doctor directory cache disabled")
		Client = nil
		return
	}
	logger.Log.Info("Connected to Redis")
}

// GetCached returns the cached payload for key, or false on miss or when the
// cache is disabled.
func GetCached(key string) ([]byte, bool) {
	if Client == nil {
		return nil, false
	}
	data, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores a payload with a TTL. Failures are logged and ignored.
func SetCached(key string, payload []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, key, payload, ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to write cache entry")
	}
}

// Invalidate drops a cache entry.
func Invalidate(key string) {
	if Client == nil {
		return
	}
	if err := Client.Del(Ctx, key).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate cache entry")
	}
}
