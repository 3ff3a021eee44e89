package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// ErrDecryptFailed is returned when ciphertext was not produced by Encrypt
// with the same secret, or was tampered with in transit.
var ErrDecryptFailed = errors.New("decryption failed")

const (
	noteKeySalt   = "securebank.note.v1"
	noteKDFRounds = 4096
	noteKeyLen    = 32
)

// NoteCipher seals and opens free-text notes with AES-256-GCM. The key is
// derived once from a configured passphrase via PBKDF2-SHA256.
type NoteCipher struct {
	aead cipher.AEAD
}

// NewNoteCipher derives the note key from secret and prepares the AEAD.
func NewNoteCipher(secret string) (*NoteCipher, error) {
	key := pbkdf2.Key([]byte(secret), []byte(noteKeySalt), noteKDFRounds, noteKeyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("note cipher init: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("note cipher init: %w", err)
	}
	return &NoteCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns
// base64(nonce || ciphertext). Every string round-trips through Decrypt,
// including the empty string.
func (c *NoteCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce generation: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Input that did not come from Encrypt with the
// same secret returns ErrDecryptFailed, never a panic.
func (c *NoteCipher) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrDecryptFailed
	}
	n := c.aead.NonceSize()
	if len(raw) < n {
		return "", ErrDecryptFailed
	}
	plaintext, err := c.aead.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}
