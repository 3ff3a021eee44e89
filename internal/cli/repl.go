package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Balance(ctx context.Context) error
	Transfer(ctx context.Context) error
	Profile(ctx context.Context) error
	Upload(ctx context.Context) error
	EncryptNote(ctx context.Context) error
	DecryptNote(ctx context.Context) error
	Logs(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. The loop exits on scanner EOF, ctx cancellation, or when
// the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors to the user. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (b)alance, transfer, profile, upload, encrypt, decrypt, logs, logout, exit")
			} else {
				printlnFn("Available commands: register, login, logs, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "b", "balance":
			_ = a.Balance(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "encrypt":
			_ = a.EncryptNote(ctx)

		case "decrypt":
			_ = a.DecryptNote(ctx)

		case "logs":
			_ = a.Logs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
