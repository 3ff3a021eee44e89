// Package session tracks the single active identity, its last-activity
// timestamp, and idle expiry. It also mints the JWT session tokens handed to
// the UI collaborator at login.
package session

import (
	"sync"
	"time"
)

// Status is the outcome of an idle check.
type Status int

const (
	// StatusAnonymous means no session is active.
	StatusAnonymous Status = iota
	// StatusActive means the session is within the idle threshold.
	StatusActive
	// StatusExpired means the idle threshold was exceeded.
	StatusExpired
)

// Manager holds at most one active session per process instance.
type Manager struct {
	mu           sync.Mutex
	identity     string
	lastActivity time.Time
}

func NewManager() *Manager {
	return &Manager{}
}

// Start establishes a session for username with lastActivity = now,
// replacing any previous session.
func (m *Manager) Start(username string, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = username
	m.lastActivity = now
}

// Clear ends the session. Safe to call when already anonymous.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = ""
	m.lastActivity = time.Time{}
}

// Touch refreshes the last-activity timestamp. Callers invoke it before an
// operation's business validation so an action taken right at the idle
// boundary still resets the timer. No-op when anonymous.
func (m *Manager) Touch(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity != "" {
		m.lastActivity = now
	}
}

// Identity returns the active username, if any.
func (m *Manager) Identity() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity, m.identity != ""
}

// CheckIdle compares the gap since the last activity against limit.
func (m *Manager) CheckIdle(now time.Time, limit time.Duration) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.identity == "" {
		return StatusAnonymous
	}
	if now.Sub(m.lastActivity) > limit {
		return StatusExpired
	}
	return StatusActive
}
