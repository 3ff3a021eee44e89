// Package lockout tracks failed authentication attempts per username and the
// resulting lock state. A lock is permanent for the life of the process:
// there is no unlock or expiry path.
package lockout

import "sync"

// State is the per-username counter snapshot.
type State struct {
	FailedAttempts int
	Locked         bool
}

// Tracker counts consecutive failures and locks a username once the
// threshold is reached.
type Tracker struct {
	mu        sync.Mutex
	threshold int
	states    map[string]*State
}

func NewTracker(threshold int) *Tracker {
	return &Tracker{
		threshold: threshold,
		states:    make(map[string]*State),
	}
}

// RecordFailure increments the counter and engages the lock at the
// threshold. It returns the post-increment state so the caller can tell a
// freshly engaged lock (FailedAttempts == threshold) from a plain failure.
func (t *Tracker) RecordFailure(username string) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.states[username]
	if s == nil {
		s = &State{}
		t.states[username] = s
	}
	s.FailedAttempts++
	if s.FailedAttempts >= t.threshold {
		s.Locked = true
	}
	return *s
}

// RecordSuccess resets the failure counter. An engaged lock stays engaged;
// locking is permanent in this scope.
func (t *Tracker) RecordSuccess(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s := t.states[username]; s != nil {
		s.FailedAttempts = 0
	}
}

// IsLocked reports whether the username is locked. Callers consult this
// before any digest comparison so a locked account reveals nothing about
// password correctness.
func (t *Tracker) IsLocked(username string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.states[username]
	return s != nil && s.Locked
}

// Snapshot returns the current state for username.
func (t *Tracker) Snapshot(username string) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s := t.states[username]; s != nil {
		return *s
	}
	return State{}
}
