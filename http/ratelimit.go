package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTimeout is how long a client's limiter is kept after
// its last request.
const DefaultLimiterIdleTimeout = 10 * time.Minute

// ClientLimiter rate limits requests per client address using token
// buckets. Each client gets its own limiter, dropped once the client has
// been idle for IdleTimeout.
type ClientLimiter struct {
	// IdleTimeout bounds how long an unused limiter is kept.
	IdleTimeout time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu        sync.Mutex
	limiters  map[string]*clientEntry
	lastSweep time.Time
	rps       float64
	burst     int
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with bursts of up to burst requests.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		IdleTimeout: DefaultLimiterIdleTimeout,
		Now:         time.Now,
		limiters:    make(map[string]*clientEntry),
		rps:         rps,
		burst:       burst,
	}
}

// Allow reports whether a request from client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	now := l.Now()
	l.sweep(now)
	entry, ok := l.limiters[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.limiters[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// sweep drops limiters idle for longer than IdleTimeout, at most once per
// IdleTimeout. Must be called with mu held.
func (l *ClientLimiter) sweep(now time.Time) {
	if l.IdleTimeout <= 0 || now.Sub(l.lastSweep) < l.IdleTimeout {
		return
	}
	l.lastSweep = now
	for client, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.IdleTimeout {
			delete(l.limiters, client)
		}
	}
}

// Middleware answers 429 to clients over their limit. The client is the
// request's remote host, which RealIP has already resolved.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := r.RemoteAddr
		if host, _, err := net.SplitHostPort(client); err == nil {
			client = host
		}
		if !l.Allow(client) {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Detail: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
