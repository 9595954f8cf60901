package telegram

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// rateLimiter caps per-chat message throughput. Idle chats expire from
// the cache so the limiter map cannot grow unbounded.
type rateLimiter struct {
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
	enabled  bool
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return &rateLimiter{enabled: false}
	}

	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[int64, *rate.Limiter](
			1000,          // Max 1000 unique chats
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:    rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst:   burst,
		enabled: true,
	}
}

func (rl *rateLimiter) Allow(chatID int64) error {
	if !rl.enabled {
		return nil
	}

	limiter, ok := rl.limiters.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(chatID, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for chat %d", chatID)
	}
	return nil
}
