// Package ratelimiter limits how often a key may perform an operation.
package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// window tracks the hits of one key since its window started.
type window struct {
	count int
	start time.Time
}

// RateLimiter is a fixed-window limiter keyed by an arbitrary string.
// It is safe for concurrent use.
type RateLimiter struct {
	limit    int           // hits allowed per interval
	interval time.Duration // window length
	now      func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

// NewRateLimiter returns a limiter allowing limit hits per interval and key.
// A non-positive limit disables limiting.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return newRateLimiter(limit, interval, time.Now)
}

func newRateLimiter(limit int, interval time.Duration, now func() time.Time) *RateLimiter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		now:       now,
		windows:   make(map[string]*window),
		lastSweep: now(),
	}
}

// Allow records a hit for key. When the limit is exceeded it returns false and
// the time left until the key's window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}

	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)

	w, ok := rl.windows[key]
	// reset once the interval has elapsed
	if !ok || now.Sub(w.start) >= rl.interval {
		w = &window{start: now}
		rl.windows[key] = w
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.start)
	}
	return true, 0
}

// sweep drops expired windows at most once per interval. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, k)
		}
	}
	rl.lastSweep = now
}

// Middleware rejects requests over the limit per client IP with 429.
func Middleware(rl *RateLimiter, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, retry := rl.Allow(ip)
		if ok {
			c.Next()
			return
		}

		log.WithFields(logrus.Fields{
			"remote_addr": ip,
			"path":        c.FullPath(),
			"retry_after": retry.String(),
		}).Warn("rate limit exceeded")

		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}
}
