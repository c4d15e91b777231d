package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// DefaultSearchInterval is the steady-state spacing between search
	// requests from one client.
	DefaultSearchInterval = 6 * time.Second

	// DefaultSearchBurst allows a short run of back-to-back requests
	// before the interval applies.
	DefaultSearchBurst = 2

	staleAfter = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SearchLimiter throttles the on-demand search endpoint per client IP. Every
// search miss fans out to upstream providers, so unthrottled clients could
// burn through the provider quotas.
type SearchLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter

	interval time.Duration
	burst    int
}

func NewSearchLimiter() *SearchLimiter {
	return &SearchLimiter{
		clients:  make(map[string]*clientLimiter),
		interval: DefaultSearchInterval,
		burst:    DefaultSearchBurst,
	}
}

// Middleware returns the echo middleware enforcing the per-IP limit.
func (l *SearchLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "search rate limit exceeded, please slow down")
			}
			return next(c)
		}
	}
}

func (l *SearchLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	client, exists := l.clients[ip]
	if !exists {
		l.evictStale(now)
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(l.interval), l.burst),
		}
		l.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.Allow()
}

// evictStale drops limiters for clients not seen recently. Called with the
// lock held, only on the new-client path so steady traffic pays nothing.
func (l *SearchLimiter) evictStale(now time.Time) {
	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) > staleAfter {
			delete(l.clients, ip)
		}
	}
}
