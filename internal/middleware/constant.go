package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"

	defaultMaxTrackedUsers = 1000
	limiterTTL             = 5 * time.Minute
)
