// Package ratelimiter provides a fixed-window counter used to throttle
// abusable endpoints.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter caps how many calls fit in each interval. It is shared across
// request goroutines and safe for concurrent use.
type Limiter struct {
	mu        sync.Mutex
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

// New creates a Limiter allowing limit calls per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allow reports whether another call fits in the current window.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastReset) >= l.interval {
		l.count = 0
		l.lastReset = now
	}

	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

// Middleware rejects requests over the window limit with 429.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
