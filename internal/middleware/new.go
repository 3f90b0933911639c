package middleware

import (
	"life-balance-planner/pkg/log"
)

// Config is the dependency bag for Middleware.
type Config struct {
	// JWTSecret verifies HS256 bearer tokens. Empty disables auth.
	JWTSecret string
	// UploadRateLimitPerMin bounds uploads per client. Zero disables the limit.
	UploadRateLimitPerMin int
	// AllowedOrigins feeds CORS. Empty allows every origin.
	AllowedOrigins []string
}

type Middleware struct {
	l         log.Logger
	jwtSecret []byte
	limiter   *rateLimiter
	origins   []string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		origins: cfg.AllowedOrigins,
	}
	if cfg.JWTSecret != "" {
		mw.jwtSecret = []byte(cfg.JWTSecret)
	}
	if cfg.UploadRateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.UploadRateLimitPerMin)
	}
	return mw
}
