package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *NoteCipher {
	t.Helper()
	c, err := NewNoteCipher("my-super-secret-key-12345")
	require.NoError(t, err)
	return c
}

func TestNoteCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	for _, s := range []string{
		"",
		"short",
		"a longer note\nwith newlines\tand tabs",
		"unicode ключ 💳",
	} {
		ct, err := c.Encrypt(s)
		require.NoError(t, err)

		pt, err := c.Decrypt(ct)
		require.NoError(t, err)
		require.Equal(t, s, pt)
	}
}

func TestNoteCipher_FreshNoncePerCall(t *testing.T) {
	c := newTestCipher(t)

	a, err := c.Encrypt("same note")
	require.NoError(t, err)
	b, err := c.Encrypt("same note")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestNoteCipher_ForeignInput(t *testing.T) {
	c := newTestCipher(t)

	for _, bad := range []string{
		"not even base64 !!!",
		"c2hvcnQ=", // valid base64, too short for a nonce
		"",
	} {
		_, err := c.Decrypt(bad)
		require.ErrorIs(t, err, ErrDecryptFailed, "input %q", bad)
	}
}

func TestNoteCipher_WrongKey(t *testing.T) {
	c := newTestCipher(t)
	other, err := NewNoteCipher("a-completely-different-secret")
	require.NoError(t, err)

	ct, err := c.Encrypt("for your eyes only")
	require.NoError(t, err)

	_, err = other.Decrypt(ct)
	require.ErrorIs(t, err, ErrDecryptFailed)
}

func TestNoteCipher_Tampered(t *testing.T) {
	c := newTestCipher(t)

	ct, err := c.Encrypt("original")
	require.NoError(t, err)

	// flip a character somewhere in the body
	b := []byte(ct)
	if b[len(b)/2] == 'A' {
		b[len(b)/2] = 'B'
	} else {
		b[len(b)/2] = 'A'
	}

	_, err = c.Decrypt(string(b))
	require.ErrorIs(t, err, ErrDecryptFailed)
}
