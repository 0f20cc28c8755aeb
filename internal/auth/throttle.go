package auth

import "golang.org/x/time/rate"

// Throttle is a token bucket shared by every login attempt.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle allows perSecond sustained attempts with the given burst.
// A non-positive rate disables throttling.
func NewThrottle(perSecond float64, burst int) *Throttle {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Throttle{limiter: rate.NewLimiter(limit, burst)}
}

// Allow consumes one token and reports whether an attempt may proceed.
func (t *Throttle) Allow() bool {
	return t.limiter.Allow()
}
