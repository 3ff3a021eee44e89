package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystemClipboardUsesAvailableHelper(t *testing.T) {
	oldLook, oldRun := lookPath, runCmd
	t.Cleanup(func() { lookPath, runCmd = oldLook, oldRun })

	lookPath = func(name string) (string, error) {
		if name == "xclip" {
			return "/usr/bin/xclip", nil
		}
		return "", errors.New("not found")
	}

	var gotName, gotStdin string
	runCmd = func(name string, stdin string, args ...string) error {
		gotName, gotStdin = name, stdin
		return nil
	}

	c := NewClipboard()
	err := c.Write("ciphertext")
	if err != nil {
		// on darwin/windows the candidate list has no xclip
		require.Contains(t, err.Error(), "no clipboard utility found")
		return
	}
	require.Equal(t, "xclip", gotName)
	require.Equal(t, "ciphertext", gotStdin)
}

func TestSystemClipboardNoHelper(t *testing.T) {
	oldLook := lookPath
	t.Cleanup(func() { lookPath = oldLook })
	lookPath = func(string) (string, error) { return "", errors.New("not found") }

	require.Error(t, NewClipboard().Write("x"))
}
