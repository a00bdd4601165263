package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitKeyPrefix namespaces rate limit counters in Redis.
const rateLimitKeyPrefix = "travelmate:ratelimit:"

// Counter increments a windowed counter and returns its new value.
// The key expires on its own once window has elapsed.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter implements Counter with INCR, setting the TTL with EXPIRE on
// the increment that creates the key. It needs no Redis 7 commands.
type RedisCounter struct {
	client redis.Cmdable
}

// NewRedisCounter constructs a RedisCounter on top of client.
func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr bumps key and starts its window when the key is new. Later increments
// leave the TTL alone so the window never slides.
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// NewRateLimiter returns a fixed-window limiter allowing limit requests per
// window for each caller. Authenticated callers are keyed by subject, anyone
// else by remote address, so place it after Authenticate and chi's RealIP.
//
// The limiter fails open: when the counter errors the request is served and
// the failure is logged.
func NewRateLimiter(c Counter, limit int, window time.Duration, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			who := "ip:" + r.RemoteAddr
			if id := IdentityFrom(r.Context()); !id.IsZero() {
				who = "sub:" + id.Subject
			}
			bucket := time.Now().UnixNano() / int64(window)
			key := rateLimitKeyPrefix + who + ":" + strconv.FormatInt(bucket, 10)

			n, err := c.Incr(r.Context(), key, window)
			if err != nil {
				log.WarnContext(r.Context(), "rate limiter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - n
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeError(w, r, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
