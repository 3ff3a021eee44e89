package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"securebank/internal/config"
	"securebank/internal/engine"
	"securebank/internal/logging"
)

// App is the interactive banking console. It holds the active session token
// and a flash message that clears itself after the configured TTL.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	engine *engine.Engine
	reader *bufio.Reader

	mu       sync.Mutex
	token    string
	userName string
	message  string
	msgTimer *time.Timer
}

func NewApp(cfg *config.Config, logger logging.Logger, eng *engine.Engine) *App {
	a := &App{
		cfg:    cfg,
		log:    logger,
		engine: eng,
		reader: bufio.NewReader(os.Stdin),
	}
	eng.SetClipboard(NewClipboard())
	eng.OnSessionExpired(a.onExpired)
	return a
}

// Run starts the REPL and blocks until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to SecureBank CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token != ""
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := ""
	if a.userName != "" {
		s = fmt.Sprintf("(%s)", a.userName)
	}
	if a.message != "" {
		s = s + " * " + a.message
	}
	return s
}

// flash shows a message in the prompt and clears it after MessageTTL.
// A new message replaces the previous one and restarts the timer.
func (a *App) flash(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.msgTimer != nil {
		a.msgTimer.Stop()
	}
	a.message = msg
	a.msgTimer = time.AfterFunc(a.cfg.MessageTTL, func() {
		a.mu.Lock()
		if a.message == msg {
			a.message = ""
		}
		a.mu.Unlock()
	})
}

// onExpired is called by the engine's idle watcher. The session token is
// dropped here so the prompt reflects the forced logout immediately.
func (a *App) onExpired(msg string) {
	a.mu.Lock()
	a.token = ""
	a.userName = ""
	a.mu.Unlock()
	a.flash(msg)
	printlnFn(msg)
}

func (a *App) setSession(username, token string) {
	a.mu.Lock()
	a.token = token
	a.userName = username
	a.mu.Unlock()
}

func (a *App) clearSession() {
	a.setSession("", "")
}
