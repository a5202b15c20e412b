package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"specialist-router/pkg/response"
)

// rateLimiter keeps one token bucket per caller. Idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxTracked int) *rateLimiter {
	if maxTracked <= 0 {
		maxTracked = defaultMaxTrackedUsers
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTracked, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / time.Minute.Seconds()),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles callers identified by the X-User-ID header, the userId
// query parameter, or the client IP, in that order.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := callerKey(c)
		if !m.limiter.allow(key) {
			m.l.Warn(c.Request.Context(), "internal.middleware.RateLimit: rate limit exceeded", "caller", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if v := c.GetHeader(HeaderUserID); v != "" {
		return "user:" + v
	}
	if v := c.Query("userId"); v != "" {
		return "user:" + v
	}
	return "ip:" + c.ClientIP()
}
