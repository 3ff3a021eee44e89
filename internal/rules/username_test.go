package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeUsername(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"bob", "bob"},
		{"<script>", "script"},
		{`ann"e`, "anne"},
		{"o'neil", "oneil"},
		{"a<b>c", "abc"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SanitizeUsername(tt.in))
	}
}

func TestScreenUsername(t *testing.T) {
	for _, bad := range []string{
		"' OR '1'='1",
		"admin'--",
		"bob--",
		"xORy",
	} {
		require.ErrorIs(t, ScreenUsername(bad), ErrSuspiciousInput, "input %q", bad)
	}

	for _, ok := range []string{"bob", "alice42", "or_lowercase", "Orwell"} {
		require.NoError(t, ScreenUsername(ok), "input %q", ok)
	}
}

func TestValidateEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "user+tag@example.org", "x.y@sub.domain.io"} {
		require.True(t, ValidateEmail(ok), "email %q", ok)
	}
	for _, bad := range []string{"", "plain", "no@tld", "two@@x.co", "spa ce@x.co", "@x.co"} {
		require.False(t, ValidateEmail(bad), "email %q", bad)
	}
}
