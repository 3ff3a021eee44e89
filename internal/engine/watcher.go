package engine

import (
	"context"
	"time"

	"securebank/internal/session"
)

// Touch refreshes the session's last-activity timestamp. Every operation
// calls it before business validation so an action taken right at the idle
// boundary still resets the timer.
func (e *Engine) Touch() {
	e.sessions.Touch(e.now())
}

// CheckIdle compares now against the last activity. On expiry it notifies
// the UI, appends the expiry audit entry, and forces a logout. The watcher
// calls this on its polling interval; it is also safe to call directly.
func (e *Engine) CheckIdle(ctx context.Context, now time.Time) session.Status {
	st := e.sessions.CheckIdle(now, e.cfg.IdleTimeout)
	if st != session.StatusExpired {
		return st
	}

	username, _ := e.sessions.Identity()
	e.log.Warn(ctx, "session expired", "username", username)

	// the UI is told first, while the identity is still set
	if e.onExpired != nil {
		e.onExpired("Session expired due to inactivity. Please login again")
	}
	e.audit(ctx, "Session expired due to inactivity")
	e.collector.RecordSessionExpiry()
	_ = e.Logout(ctx)
	return session.StatusExpired
}

// startWatcher launches the idle-check goroutine. It runs only while a
// session is active; stopWatcher cancels it so it never fires against a
// cleared session.
func (e *Engine) startWatcher() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.watchCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.watchCancel = cancel

	go func() {
		ticker := time.NewTicker(e.cfg.IdleCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				e.CheckIdle(ctx, now)
			}
		}
	}()
}

func (e *Engine) stopWatcher() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.watchCancel != nil {
		e.watchCancel()
		e.watchCancel = nil
	}
}
