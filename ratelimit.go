package busfleet

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)

// clientLimiter keeps one token bucket per client address
type clientLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*clientBucket
	now     func() time.Time
}

type clientBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*clientBucket),
		now:     time.Now,
	}
}

// Allow reports whether client may make a request now
func (c *clientLimiter) Allow(client string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	b, ok := c.clients[client]
	if !ok {
		if len(c.clients) >= limiterSweepSize {
			c.sweep(now)
		}
		b = &clientBucket{lim: rate.NewLimiter(c.limit, c.burst)}
		c.clients[client] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

func (c *clientLimiter) sweep(now time.Time) {
	for k, b := range c.clients {
		if now.Sub(b.seen) > limiterIdleTTL {
			delete(c.clients, k)
		}
	}
}

func (c *clientLimiter) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

var errRateLimited = &QueryError{Status: http.StatusTooManyRequests, Detail: "Too many requests.", RetryAfter: "1"}

// rateLimit rejects clients that exceed their bucket with 429. A nil limiter
// passes everything through.
func rateLimit(c *clientLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		if c == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !c.Allow(clientAddr(r)) {
				writeQueryError(w, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request) string {
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return h
	}
	return r.RemoteAddr
}
