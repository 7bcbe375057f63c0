package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const visitorIdleTTL = 10 * time.Minute

// RateLimiter limits requests per client IP. Each Limit call creates an
// independent group so that a busy login endpoint does not drain the
// submission budget of the same client.
type RateLimiter struct {
	mu     sync.Mutex
	groups []*limiterGroup
	stop   chan struct{}
	once   sync.Once
	now    func() time.Time
}

type limiterGroup struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per IP,
// with a burst of the same size. A non-positive limit returns nil, which
// Chain skips.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if maxPerMinute <= 0 {
		return nil
	}

	g := &limiterGroup{
		limit:    rate.Limit(float64(maxPerMinute) / 60.0),
		burst:    maxPerMinute,
		visitors: make(map[string]*visitor),
	}
	rl.mu.Lock()
	rl.groups = append(rl.groups, g)
	rl.mu.Unlock()

	retryAfter := strconv.Itoa(60/maxPerMinute + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !g.allow(clientIP(r), rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (g *limiterGroup) allow(key string, now time.Time) bool {
	g.mu.Lock()
	v, ok := g.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.visitors[key] = v
	}
	v.lastSeen = now
	g.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

func (g *limiterGroup) evict(before time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, v := range g.visitors {
		if v.lastSeen.Before(before) {
			delete(g.visitors, key)
		}
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	before := rl.now().Add(-visitorIdleTTL)
	rl.mu.Lock()
	groups := append([]*limiterGroup(nil), rl.groups...)
	rl.mu.Unlock()
	for _, g := range groups {
		g.evict(before)
	}
}

// clientIP strips the port from RemoteAddr. Proxies are expected to be
// handled by the ingress rewriting RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
