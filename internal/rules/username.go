package rules

import (
	"errors"
	"regexp"
	"strings"
)

// ErrSuspiciousInput rejects classic injection shapes before any lockout or
// digest logic runs.
var ErrSuspiciousInput = errors.New("Invalid input detected")

var unsafeCharsRe = regexp.MustCompile(`[<>"']`)

// SanitizeUsername strips angle brackets and quote characters. Registration
// rejects (never silently fixes) any name that changes under sanitization.
func SanitizeUsername(name string) string {
	return unsafeCharsRe.ReplaceAllString(name, "")
}

// ScreenUsername rejects usernames carrying naive injection patterns: an
// apostrophe, a double hyphen, or the literal token OR. It runs ahead of the
// lockout check so a screened name never touches the attempt counter.
func ScreenUsername(name string) error {
	if strings.Contains(name, "'") || strings.Contains(name, "--") || strings.Contains(name, "OR") {
		return ErrSuspiciousInput
	}
	return nil
}
