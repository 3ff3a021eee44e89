package cli

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// lookPath and runCmd are test seams around os/exec.
var lookPath = exec.LookPath
var runCmd = func(name string, stdin string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

// SystemClipboard writes text to the OS clipboard through whichever helper
// binary is available. Satisfies the engine's Clipboard interface; a missing
// helper is reported as an error and the caller decides what that means.
type SystemClipboard struct{}

func NewClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) Write(text string) error {
	type candidate struct {
		name string
		args []string
	}

	var candidates []candidate
	switch runtime.GOOS {
	case "darwin":
		candidates = []candidate{{name: "pbcopy"}}
	case "windows":
		candidates = []candidate{{name: "clip"}}
	default:
		candidates = []candidate{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}

	for _, cd := range candidates {
		if _, err := lookPath(cd.name); err != nil {
			continue
		}
		return runCmd(cd.name, text, cd.args...)
	}
	return errors.New("no clipboard utility found")
}
