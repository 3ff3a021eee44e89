package codec

import (
	"encoding/base64"
	"fmt"
)

// ObfuscateEmail encodes an email address into an opaque reversible token:
// standard base64, then the encoded text reversed. This is obfuscation, not
// encryption; confidentiality is not a goal of this transform.
func ObfuscateEmail(email string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(email))
	return reverse(enc)
}

// DeobfuscateEmail restores the email address from an obfuscation token.
// Tokens not produced by ObfuscateEmail yield an error.
func DeobfuscateEmail(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(reverse(token))
	if err != nil {
		return "", fmt.Errorf("malformed email token: %w", err)
	}
	return string(raw), nil
}

// reverse flips a string byte-wise. Base64 output is ASCII, so this is safe
// for both directions of the obfuscation round trip.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
