package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimit limits requests per client IP: maxRequests within window.
// With a Redis client the counter is shared across instances via an
// INCR+EXPIRE pipeline; without one it falls back to an in-process
// token bucket per IP. Redis failures let the request through rather
// than taking the endpoint down with the cache.
func RateLimit(rdb *redis.Client, logger *slog.Logger, maxRequests int, window time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return localRateLimit(maxRequests, window)
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		pipe := rdb.Pipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			logger.Warn("rate limit check failed", "error", err)
			c.Next()
			return
		}

		if incr.Val() > int64(maxRequests) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func localRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	pool := newLimiterPool(maxRequests, window)

	return func(c *gin.Context) {
		if !pool.allow(c.ClientIP(), time.Now()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// limiterSweepSize is the map size at which a new client triggers a
// sweep of idle entries.
const limiterSweepSize = 1024

// limiterPool keeps one token bucket per client IP and ages idle
// entries out, so churning client addresses cannot grow the map
// without bound.
type limiterPool struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newLimiterPool(maxRequests int, window time.Duration) *limiterPool {
	return &limiterPool{
		entries: make(map[string]*limiterEntry),
		limit:   rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:   maxRequests,
		// An entry idle this long has a full bucket again, so dropping
		// it loses nothing.
		idleTTL: 2 * window,
	}
}

func (p *limiterPool) allow(ip string, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[ip]
	if !ok {
		if len(p.entries) >= limiterSweepSize {
			p.sweep(now)
		}
		e = &limiterEntry{lim: rate.NewLimiter(p.limit, p.burst)}
		p.entries[ip] = e
	}
	e.lastSeen = now
	return e.lim.AllowN(now, 1)
}

// sweep removes entries not seen within idleTTL. Caller holds mu.
func (p *limiterPool) sweep(now time.Time) {
	for ip, e := range p.entries {
		if now.Sub(e.lastSeen) > p.idleTTL {
			delete(p.entries, ip)
		}
	}
}
