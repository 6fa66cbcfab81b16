package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ClientRateLimiter throttles requests per client on the HTTP surface. This
// is transport-level protection against abusive callers; the per-actor money
// movement limits live in the ledger core, not here.
type ClientRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// NewClientRateLimiter creates a limiter allowing r requests per second with
// the given burst per client.
func NewClientRateLimiter(r float64, b int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(r),
		burst:    b,
	}
}

func (rl *ClientRateLimiter) getLimiter(client string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[client]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists = rl.limiters[client]
	if exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[client] = limiter

	return limiter
}

// Limit is a middleware that enforces the per-client throttle. Authenticated
// requests are keyed by actor; anonymous ones by client address.
func (rl *ClientRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)

		if !rl.getLimiter(client).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if actorID, ok := ActorID(r.Context()); ok {
		return "actor:" + actorID
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return "addr:" + forwarded
	}
	return "addr:" + r.RemoteAddr
}
