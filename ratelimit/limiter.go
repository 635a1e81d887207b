package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// Result reports the outcome of a Check call. RetryAfter is the number of
// seconds until the window resets, set only when the attempt is denied.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter int
}

type record struct {
	attempts     int
	firstAttempt time.Time
}

// Limiter is a process-local sliding-window counter keyed by client. It is
// advisory only: state does not survive restarts and is not shared across
// instances.
type Limiter struct {
	mu          sync.Mutex
	records     map[string]*record
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// New creates a limiter allowing maxAttempts per window per key.
func New(maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{
		records:     make(map[string]*record),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Check records an attempt for key and reports whether it is allowed.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	rec, exists := l.records[key]
	if !exists || now.Sub(rec.firstAttempt) > l.window {
		l.records[key] = &record{attempts: 1, firstAttempt: now}
		return Result{Allowed: true, Remaining: l.maxAttempts - 1}
	}

	if rec.attempts >= l.maxAttempts {
		retryAfter := int(math.Ceil(rec.firstAttempt.Add(l.window).Sub(now).Seconds()))
		return Result{Allowed: false, Remaining: 0, RetryAfter: retryAfter}
	}

	rec.attempts++
	return Result{Allowed: true, Remaining: l.maxAttempts - rec.attempts}
}

// Reset clears the counter for key, so a successful login does not penalize
// the client for earlier failed attempts.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, key)
}

// cleanup drops records whose window has elapsed.
func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for key, rec := range l.records {
		if rec.firstAttempt.Before(cutoff) {
			delete(l.records, key)
		}
	}
}

// StartCleanupWorker periodically evicts expired records until ctx is done.
func (l *Limiter) StartCleanupWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}
