// Package engine wires the codec, rules, repositories, lockout tracker, and
// session manager into the operations the UI collaborator calls. Every
// operation returns a value plus an error; failures carry a common.Kind and
// the exact user-facing message. Panics never escape an operation: they are
// recovered at the boundary and converted to a generic operation-failed
// error so the caller always receives a well-formed result.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"securebank/internal/codec"
	"securebank/internal/common"
	"securebank/internal/config"
	"securebank/internal/lockout"
	"securebank/internal/logging"
	"securebank/internal/metrics"
	"securebank/internal/models"
	"securebank/internal/repository"
	"securebank/internal/session"
)

// Clipboard receives encrypted notes. The write is best-effort: failure is
// logged and reported, never rolled back.
type Clipboard interface {
	Write(text string) error
}

type Engine struct {
	cfg       *config.Config
	log       logging.Logger
	accounts  repository.Accounts
	auditLog  repository.Audit
	lockouts  *lockout.Tracker
	sessions  *session.Manager
	tokens    *session.TokenIssuer
	cipher    *codec.NoteCipher
	collector *metrics.Collector

	clipboard Clipboard
	onExpired func(message string)

	mu          sync.Mutex
	watchCancel context.CancelFunc
	document    *models.Document

	now func() time.Time
}

// New constructs the engine. The lockout tracker, session manager, token
// issuer, and note cipher are built from cfg; accounts, audit log, and the
// metrics collector are injected.
func New(cfg *config.Config, logger logging.Logger, accounts repository.Accounts, auditLog repository.Audit, collector *metrics.Collector) (*Engine, error) {
	cipher, err := codec.NewNoteCipher(cfg.NoteSecret)
	if err != nil {
		return nil, fmt.Errorf("engine init: %w", err)
	}

	return &Engine{
		cfg:       cfg,
		log:       logger,
		accounts:  accounts,
		auditLog:  auditLog,
		lockouts:  lockout.NewTracker(cfg.LockoutThreshold),
		sessions:  session.NewManager(),
		tokens:    session.NewTokenIssuer(cfg.SessionSecret, cfg.IdleTimeout),
		cipher:    cipher,
		collector: collector,
		now:       time.Now,
	}, nil
}

// SetClipboard installs the destination for encrypted notes.
func (e *Engine) SetClipboard(c Clipboard) {
	e.clipboard = c
}

// OnSessionExpired registers the UI notification invoked when idle expiry
// forces a logout. It runs before the session is cleared.
func (e *Engine) OnSessionExpired(fn func(message string)) {
	e.onExpired = fn
}

// AuditLog returns the ordered audit trail.
func (e *Engine) AuditLog(ctx context.Context) ([]models.AuditEntry, error) {
	return e.auditLog.List(ctx)
}

// guard converts a panic inside an operation into a kind=internal error
// with the operation's generic failure message.
func (e *Engine) guard(ctx context.Context, op, failMsg string, err *error) {
	if r := recover(); r != nil {
		e.log.Error(ctx, "operation panicked", "op", op, "panic", fmt.Sprint(r))
		*err = common.E(common.KindInternal, failMsg)
	}
}

// audit appends one entry attributed to the active identity, or Anonymous.
func (e *Engine) audit(ctx context.Context, action string) {
	actor := models.AnonymousActor
	if id, ok := e.sessions.Identity(); ok {
		actor = id
	}
	entry := &models.AuditEntry{
		ID:        uuid.New(),
		Timestamp: e.now(),
		Actor:     actor,
		Action:    action,
	}
	if err := e.auditLog.Append(ctx, entry); err != nil {
		e.log.Error(ctx, "audit append failed", "action", action, "error", err.Error())
	}
}
