package locfetch

import (
	"sync"
	"time"
)

// Attempt records the most recent failed fetch for a cache key.
type Attempt struct {
	OccurredAt time.Time
	Reason     string
}

// AttemptTracker suppresses repeated remote calls to a service that is
// currently failing. It keeps at most one attempt per cache key,
// overwritten on each new failure and removed on success. It never
// contacts the network itself; it only gates whether the client does.
type AttemptTracker struct {
	window   time.Duration
	attempts map[string]Attempt
	mu       sync.Mutex
}

// NewAttemptTracker creates a tracker with the given suppression
// window. A window of 0 or less disables suppression entirely.
func NewAttemptTracker(window time.Duration) *AttemptTracker {
	return &AttemptTracker{
		window:   window,
		attempts: make(map[string]Attempt),
	}
}

// RecordFailure stores the attempt for key, replacing any previous one.
func (t *AttemptTracker) RecordFailure(key string, err error) {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts[key] = Attempt{
		OccurredAt: time.Now(),
		Reason:     reason,
	}
}

// RecordSuccess removes any stored attempt for key.
func (t *AttemptTracker) RecordSuccess(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, key)
}

// ShouldAvoidRetry reports whether a failure was recorded for key
// within the suppression window.
func (t *AttemptTracker) ShouldAvoidRetry(key string) bool {
	if t.window <= 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	attempt, ok := t.attempts[key]
	if !ok {
		return false
	}
	if time.Since(attempt.OccurredAt) > t.window {
		// Window elapsed, the key is eligible again.
		delete(t.attempts, key)
		return false
	}
	return true
}

// LastFailure returns the stored attempt for key, if any.
func (t *AttemptTracker) LastFailure(key string) (Attempt, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	attempt, ok := t.attempts[key]
	return attempt, ok
}

// Len returns the number of keys currently tracked as failing.
func (t *AttemptTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.attempts)
}
