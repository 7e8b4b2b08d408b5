package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter gives every client its own token bucket.
// For production behind several instances, consider a shared store.
type RateLimiter struct {
	clients map[string]*clientLimit
	limit   rate.Limit
	burst   int
	idle    time.Duration
	mu      sync.Mutex
	stop    chan struct{}
}

type clientLimit struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter
// requests: maximum number of requests allowed per window, also the burst size
// window: time window duration (e.g., 1 minute), also the idle-client cleanup interval
func NewRateLimiter(requests int, window time.Duration) (*RateLimiter, error) {
	if requests <= 0 {
		return nil, fmt.Errorf("rate limit requests must be positive, got %d", requests)
	}
	if window <= 0 {
		return nil, fmt.Errorf("rate limit window must be positive, got %s", window)
	}

	rl := &RateLimiter{
		clients: make(map[string]*clientLimit),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
		idle:    window,
		stop:    make(chan struct{}),
	}

	go rl.cleanup()

	return rl, nil
}

// Middleware returns a rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(getClientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"ok":false,"message":"Rate limit exceeded. Please try again later."}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	client, exists := rl.clients[clientID]
	if !exists {
		client = &clientLimit{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientID] = client
	}
	client.lastSeen = time.Now()
	rl.mu.Unlock()

	return client.limiter.Allow()
}

// cleanup forgets clients idle for longer than a window; their bucket would be full again anyway
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-rl.idle)
			for clientID, client := range rl.clients {
				if client.lastSeen.Before(cutoff) {
					delete(rl.clients, clientID)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// getClientIP keys clients on the connection address. Forwarding headers are
// not read here; chi's RealIP middleware rewrites RemoteAddr when the server
// sits behind a trusted proxy.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
