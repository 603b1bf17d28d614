package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const directoryTTL = 5 * time.Minute

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// CacheDirectory stores a rendered lawyer-directory page.
func CacheDirectory(key string, payload []byte) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, payload, directoryTTL)
}

// GetDirectory returns a cached directory page, or nil on miss.
func GetDirectory(key string) []byte {
	if Client == nil {
		return nil
	}
	data, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

// InvalidateDirectory drops every cached directory page. Called after any
// lawyer profile or availability write.
func InvalidateDirectory() {
	if Client == nil {
		return
	}
	keys, err := Client.Keys(Ctx, "lawyers:directory:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	Client.Del(Ctx, keys...)
}

// BlacklistToken marks a JWT id as revoked until its expiry.
func BlacklistToken(jti string, until time.Duration) {
	if Client == nil || jti == "" || until <= 0 {
		return
	}
	Client.Set(Ctx, "blacklist:"+jti, 1, until)
}

// TokenBlacklisted reports whether the JWT id was revoked by logout.
func TokenBlacklisted(jti string) bool {
	if Client == nil || jti == "" {
		return false
	}
	n, err := Client.Exists(Ctx, "blacklist:"+jti).Result()
	return err == nil && n > 0
}
