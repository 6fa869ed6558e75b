package middleware

import (
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	sessions     scope.Manager
	loginLimiter *rateLimiter
}

// New builds the shared middleware set. loginRatePerMin bounds sign-in attempts per client IP.
func New(l log.Logger, sessions scope.Manager, loginRatePerMin int) Middleware {
	return Middleware{
		l:            l,
		sessions:     sessions,
		loginLimiter: newRateLimiter(loginRatePerMin),
	}
}
