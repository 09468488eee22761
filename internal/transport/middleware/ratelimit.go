package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long a client may stay silent before its limiter is dropped.
const idleTTL = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Every Limit call owns a
// separate set of buckets, so limits on different route groups do not share
// budget.
type RateLimiter struct {
	mu       sync.Mutex
	groups   []*limitGroup
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type limitGroup struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts the idle-client sweeper. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client IP with a burst of the same
// size. Rejected requests get 429 and a Retry-After in whole seconds.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	g := &limitGroup{
		limit:   rate.Limit(float64(maxPerMinute) / 60),
		burst:   maxPerMinute,
		clients: make(map[string]*client),
	}
	rl.mu.Lock()
	rl.groups = append(rl.groups, g)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			lim := g.limiter(clientIP(r), now)

			res := lim.ReserveN(now, 1)
			if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(delay)))
				writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *limitGroup) limiter(key string, now time.Time) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (g *limitGroup) sweep(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, c := range g.clients {
		if now.Sub(c.lastSeen) > idleTTL {
			delete(g.clients, key)
		}
	}
}

func (g *limitGroup) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.clients)
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// clientIP strips the port from RemoteAddr. Proxy headers are resolved
// upstream by chi's RealIP middleware.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	groups := append([]*limitGroup(nil), rl.groups...)
	rl.mu.Unlock()

	for _, g := range groups {
		g.sweep(now)
	}
}
