package middleware

import (
	"specialist-router/config"
	"specialist-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(rl.RequestsPerMin, rl.MaxTrackedUsers)
	}
	return m
}
