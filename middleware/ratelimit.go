package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Throttling for the public contact endpoint: a token bucket per client
// IP plus a short-window duplicate guard so a double-clicked submit
// does not store the same message twice.

type bucket struct {
	tokens     int
	lastRefill time.Time
}

var (
	rlMu     sync.Mutex
	buckets  = map[string]*bucket{}
	window   = 60 * time.Second
	capacity = 5

	dupMu   sync.Mutex
	lastSub = map[string]struct {
		payload string
		ts      time.Time
	}{}
	dupTTL = 45 * time.Second
)

func SetRateLimitConfig(win time.Duration, cap int) {
	rlMu.Lock()
	window = win
	capacity = cap
	rlMu.Unlock()
}

func SetDuplicateTTL(ttl time.Duration) {
	dupMu.Lock()
	dupTTL = ttl
	dupMu.Unlock()
}

// RateLimit allows capacity requests per window per client IP.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !takeToken(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, retry later"})
			return
		}
		c.Next()
	}
}

func takeToken(key string) bool {
	now := time.Now()
	rlMu.Lock()
	defer rlMu.Unlock()

	b, ok := buckets[key]
	if !ok {
		buckets[key] = &bucket{tokens: capacity - 1, lastRefill: now}
		return true
	}
	if now.Sub(b.lastRefill) >= window {
		b.tokens = capacity
		b.lastRefill = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// DuplicateGuard returns false when the same client submitted the same
// payload within the duplicate window.
func DuplicateGuard(key, payload string) bool {
	now := time.Now()
	dupMu.Lock()
	defer dupMu.Unlock()

	if prev, ok := lastSub[key]; ok {
		if prev.payload == payload && now.Sub(prev.ts) < dupTTL {
			return false
		}
	}
	lastSub[key] = struct {
		payload string
		ts      time.Time
	}{payload: payload, ts: now}
	return true
}
