package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                      { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error    { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error       { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error      { return s.record("logout") }
func (s *stubExec) Balance(ctx context.Context) error     { return s.record("balance") }
func (s *stubExec) Transfer(ctx context.Context) error    { return s.record("transfer") }
func (s *stubExec) Profile(ctx context.Context) error     { return s.record("profile") }
func (s *stubExec) Upload(ctx context.Context) error      { return s.record("upload") }
func (s *stubExec) EncryptNote(ctx context.Context) error { return s.record("encrypt") }
func (s *stubExec) DecryptNote(ctx context.Context) error { return s.record("decrypt") }
func (s *stubExec) Logs(ctx context.Context) error        { return s.record("logs") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	old := printlnFn
	t.Cleanup(func() { printlnFn = old })
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	return &lines
}

func TestREPLDispatch(t *testing.T) {
	_ = captureOutput(t)
	s := &stubExec{}
	in := "register\nlogin\nbalance\ntransfer\nencrypt\ndecrypt\nlogs\nlogout\nexit\n"
	runREPL(context.Background(), s, func() string { return "" }, bufio.NewScanner(strings.NewReader(in)))

	require.Equal(t, []string{"register", "login", "balance", "transfer", "encrypt", "decrypt", "logs", "logout"}, s.calls)
}

func TestREPLShortAliases(t *testing.T) {
	_ = captureOutput(t)
	s := &stubExec{}
	runREPL(context.Background(), s, func() string { return "" }, bufio.NewScanner(strings.NewReader("b\nquit\n")))
	require.Equal(t, []string{"balance"}, s.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	lines := captureOutput(t)
	s := &stubExec{}
	runREPL(context.Background(), s, func() string { return "" }, bufio.NewScanner(strings.NewReader("frobnicate\nexit\n")))

	joined := strings.Join(*lines, "")
	require.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPLHelpVariesWithSession(t *testing.T) {
	lines := captureOutput(t)
	s := &stubExec{}
	runREPL(context.Background(), s, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\nexit\n")))
	require.Contains(t, strings.Join(*lines, ""), "register, login")

	lines2 := captureOutput(t)
	s.loggedIn = true
	runREPL(context.Background(), s, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\nexit\n")))
	require.Contains(t, strings.Join(*lines2, ""), "transfer")
}

func TestREPLExitsOnEOF(t *testing.T) {
	_ = captureOutput(t)
	s := &stubExec{}
	runREPL(context.Background(), s, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	require.Empty(t, s.calls)
}

func TestREPLStopsOnCanceledContext(t *testing.T) {
	_ = captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &stubExec{}
	runREPL(ctx, s, func() string { return "" }, bufio.NewScanner(strings.NewReader("register\n")))
	require.Empty(t, s.calls)
}
