package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out one token bucket per client IP. Dashboard polling is
// bursty, so the bucket allows short bursts above the sustained rate.
type Registry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func NewRegistry(rps float64, burst int) *Registry {
	return &Registry{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Visitor returns the limiter for ip, creating it on first sight.
func (g *Registry) Visitor(ip string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.visitors[ip]
	if !ok {
		limiter := rate.NewLimiter(g.rps, g.burst)
		g.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop evicts visitors idle for more than five minutes. It never
// returns; run it on its own goroutine.
func (g *Registry) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		g.mu.Lock()
		for ip, v := range g.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(g.visitors, ip)
			}
		}
		g.mu.Unlock()
	}
}
