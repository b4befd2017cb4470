package main

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple per-IP token bucket. Buckets reset on a
// fixed interval rather than refilling continuously.
type RateLimiter struct {
	rate     int
	interval time.Duration

	mu      sync.Mutex
	counts  map[string]int
	stopCh  chan struct{}
	stopOne sync.Once
}

// NewRateLimiter creates a rate limiter allowing rate requests per interval
// per client IP.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		rate:     rate,
		interval: interval,
		counts:   make(map[string]int),
		stopCh:   make(chan struct{}),
	}
	go rl.resetLoop()
	return rl
}

func (rl *RateLimiter) resetLoop() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			rl.counts = make(map[string]int)
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

// Allow reports whether the given IP may make another request in the
// current window.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.counts[ip] >= rl.rate {
		return false
	}
	rl.counts[ip]++
	return true
}

// Close stops the reset goroutine. Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.stopOne.Do(func() {
		close(rl.stopCh)
	})
}

// SecurityConfig holds settings for the HTTP security middleware.
type SecurityConfig struct {
	// RateLimit is the max requests per minute per IP. Zero disables
	// rate limiting.
	RateLimit int

	// MaxBodySize caps request body size in bytes. Zero disables the cap.
	MaxBodySize int64
}

// SecurityMiddleware wraps an HTTP handler with rate limiting, body size
// limits, and standard security headers. Used on the metrics endpoint;
// the MCP protocol itself runs on stdio and is not affected.
type SecurityMiddleware struct {
	next    http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *RateLimiter
}

// NewSecurityMiddleware creates the middleware around next.
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		next:   next,
		logger: logger,
		config: config,
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if sm.limiter != nil && !sm.limiter.Allow(ip) {
		sm.logger.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	if sm.config.MaxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, sm.config.MaxBodySize)
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")

	sm.next.ServeHTTP(w, r)
}

// Close releases middleware resources.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}
