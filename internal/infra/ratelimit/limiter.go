// Package ratelimit keeps per-key token buckets for message sends and realtime events.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"devconnects/config"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type keyedLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter hands out one token bucket per key and forgets keys idle for two cleanup intervals.
type Limiter struct {
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	now             func() time.Time

	mu       sync.Mutex
	limiters map[string]*keyedLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a Limiter and starts its cleanup loop. Call Stop to end the loop.
func New(limit rate.Limit, burst int, cleanupInterval time.Duration) *Limiter {
	l := newLimiter(limit, burst, cleanupInterval, time.Now)
	go l.cleanupLoop()

	return l
}

func newLimiter(limit rate.Limit, burst int, cleanupInterval time.Duration, now func() time.Time) *Limiter {
	return &Limiter{
		limit:           limit,
		burst:           burst,
		cleanupInterval: cleanupInterval,
		now:             now,
		limiters:        make(map[string]*keyedLimiter),
		stopCh:          make(chan struct{}),
	}
}

// Allow reports whether key may proceed now, consuming one token if so.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyedLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = kl
	}
	now := l.now()
	kl.lastAccess = now
	l.mu.Unlock()

	return kl.limiter.AllowN(now, 1)
}

// RetryAfter estimates how long a rejected key should wait for one token.
func (l *Limiter) RetryAfter() time.Duration {
	if l.limit <= 0 {
		return time.Second
	}

	wait := time.Duration(float64(time.Second) / float64(l.limit))
	if wait < time.Second {
		return time.Second
	}

	return wait
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCh:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	ttl := l.cleanupInterval * 2
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, kl := range l.limiters {
		if now.Sub(kl.lastAccess) > ttl {
			delete(l.limiters, key)
		}
	}
}

// Limiters groups the buckets the service enforces.
type Limiters struct {
	Messages *Limiter // POST /api/messages/:receiverId and realtime sendMessage, per sender.
	Events   *Limiter // Every other inbound realtime event, per user.
}

// NewLimiters builds both limiters from config and stops them with the application.
func NewLimiters(lc fx.Lifecycle, cfg *config.Config) *Limiters {
	rl := cfg.RateLimit
	limiters := &Limiters{
		Messages: New(rate.Limit(rl.MessageRate), rl.MessageBurst, rl.CleanupInterval),
		Events:   New(rate.Limit(rl.EventRate), rl.EventBurst, rl.CleanupInterval),
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiters.Messages.Stop()
			limiters.Events.Stop()
			return nil
		},
	})

	return limiters
}
