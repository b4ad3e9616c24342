package middlewares

import (
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFixedWindow is a per-client fixed-window counter backed by Redis.
// It fails open: if Redis is unreachable the request goes through.
type RedisFixedWindow struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisFixedWindow(rdb *redis.Client, limit int, window time.Duration, prefix string) *RedisFixedWindow {
	return &RedisFixedWindow{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (fw *RedisFixedWindow) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fw.prefix + ":" + clientIP(r)
		ctx := r.Context()

		pipe := fw.rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, fw.window)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[RATELIMIT] redis error for %s: %v", key, err)
			next.ServeHTTP(w, r)
			return
		}

		count := incr.Val()
		remaining := int64(fw.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(fw.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(fw.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(fw.window.Seconds())))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may carry a list: client, proxy1, proxy2...
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
