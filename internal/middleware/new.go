package middleware

import (
	"nl-task-parser/pkg/log"
)

// Middleware holds the dependencies of the gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config configures the middlewares.
type Config struct {
	RequestsPerMin int // per client IP; 0 disables rate limiting
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
