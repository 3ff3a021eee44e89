package engine

import (
	"context"

	"securebank/internal/common"
)

// NoteResult carries the ciphertext and whether the clipboard write landed.
// A failed clipboard write is not fatal and does not undo the encryption.
type NoteResult struct {
	Ciphertext string
	Copied     bool
}

// EncryptNote seals a note and hands the ciphertext to the clipboard.
func (e *Engine) EncryptNote(ctx context.Context, note string) (res *NoteResult, err error) {
	defer e.guard(ctx, "encrypt_note", "Encryption failed.", &err)
	e.Touch()

	if _, ok := e.sessions.Identity(); !ok {
		return nil, common.E(common.KindAuth, "Not logged in")
	}
	if note == "" {
		return nil, common.E(common.KindValidation, "Note is empty.")
	}

	ciphertext, cerr := e.cipher.Encrypt(note)
	if cerr != nil {
		return nil, common.E(common.KindInternal, "Encryption failed.")
	}

	copied := false
	if e.clipboard != nil {
		if werr := e.clipboard.Write(ciphertext); werr != nil {
			e.log.Error(ctx, "clipboard write failed", "error", werr.Error())
		} else {
			copied = true
		}
	}

	e.audit(ctx, "Encrypted and copied a secure note.")
	return &NoteResult{Ciphertext: ciphertext, Copied: copied}, nil
}

// DecryptNote opens a pasted ciphertext. Input not produced by EncryptNote
// with the same secret yields a codec error, never a crash.
func (e *Engine) DecryptNote(ctx context.Context, ciphertext string) (plaintext string, err error) {
	defer e.guard(ctx, "decrypt_note", "Decryption failed. Invalid text.", &err)
	e.Touch()

	if _, ok := e.sessions.Identity(); !ok {
		return "", common.E(common.KindAuth, "Not logged in")
	}
	if ciphertext == "" {
		return "", common.E(common.KindValidation, "Paste encrypted text first.")
	}

	plaintext, derr := e.cipher.Decrypt(ciphertext)
	if derr != nil || plaintext == "" {
		return "", common.E(common.KindCodec, "Decryption failed. Invalid text.")
	}

	e.audit(ctx, "Decrypted a secure note from clipboard.")
	return plaintext, nil
}
