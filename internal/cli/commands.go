package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"securebank/internal/common"
	"securebank/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var statFile = os.Stat

// report renders an operation error to the user. The engine wraps every
// failure in an OpError with a user-facing message; anything else gets a
// generic line so internals never leak into the prompt.
func (a *App) report(err error) error {
	var oe *common.OpError
	if errors.As(err, &oe) {
		a.flash(oe.Message)
		printlnFn(oe.Message)
		return err
	}
	printlnFn("Something went wrong. Please try again.")
	return err
}

// Register prompts for account details and creates the account.
// Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.engine.Register(ctx, username, email, password, confirm); err != nil {
		return a.report(err)
	}

	a.flash("Registration successful! Please login.")
	printlnFn("Registration successful! Please login.")
	return nil
}

// Login prompts for credentials and starts a session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	si, err := a.engine.Login(ctx, username, password)
	if err != nil {
		return a.report(err)
	}

	a.setSession(si.Username, si.Token)
	a.flash(fmt.Sprintf("Welcome back, %s!", si.Username))
	printlnFn(fmt.Sprintf("Welcome back, %s!", si.Username))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.engine.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.clearSession()
	printlnFn("Logged out.")
	return nil
}

// Balance prints the active user's balance.
func (a *App) Balance(ctx context.Context) error {
	a.mu.Lock()
	username := a.userName
	a.mu.Unlock()
	if username == "" {
		printlnFn("Not logged in")
		return nil
	}

	bal, err := a.engine.Balance(ctx, username)
	if err != nil {
		return a.report(err)
	}
	printlnFn(fmt.Sprintf("Balance: $%s", bal.StringFixed(2)))
	return nil
}

// Transfer prompts for a recipient and amount and moves the funds.
func (a *App) Transfer(ctx context.Context) error {
	recipient, err := getSimpleText(a.reader, "Recipient username", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}

	rc, err := a.engine.Transfer(ctx, recipient, amount)
	if err != nil {
		return a.report(err)
	}

	msg := fmt.Sprintf("Successfully transferred $%s to %s", rc.Amount.String(), rc.To)
	a.flash(msg)
	printlnFn(msg)
	printlnFn(fmt.Sprintf("New balance: $%s", rc.NewBalance.StringFixed(2)))
	return nil
}

// Profile updates email and/or password. Empty answers leave a field as is.
func (a *App) Profile(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("New password (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.engine.UpdateProfile(ctx, current, email, password); err != nil {
		return a.report(err)
	}

	a.flash("Profile updated successfully")
	printlnFn("Profile updated successfully")
	return nil
}

// Upload validates a file against the attachment policy. Only metadata is
// inspected; the file body never leaves disk.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return err
	}

	info, err := statFile(path)
	if err != nil {
		printlnFn("Cannot read file:", err.Error())
		return err
	}

	doc := models.Document{
		Name:      filepath.Base(path),
		MimeType:  mime.TypeByExtension(filepath.Ext(path)),
		SizeBytes: info.Size(),
	}
	if err := a.engine.ValidateUpload(ctx, doc); err != nil {
		return a.report(err)
	}

	printlnFn(fmt.Sprintf("File accepted: %s", doc.Name))
	return nil
}

// EncryptNote encrypts a note and copies the ciphertext to the clipboard.
func (a *App) EncryptNote(ctx context.Context) error {
	note, err := GetMultiline(a.reader, "Enter note", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.engine.EncryptNote(ctx, note)
	if err != nil {
		return a.report(err)
	}

	printlnFn("Encrypted:", res.Ciphertext)
	if res.Copied {
		a.flash("Encrypted note copied to clipboard!")
		printlnFn("Encrypted note copied to clipboard!")
	} else {
		a.flash("Failed to copy to clipboard.")
		printlnFn("Failed to copy to clipboard.")
	}
	return nil
}

// DecryptNote decrypts a pasted ciphertext.
func (a *App) DecryptNote(ctx context.Context) error {
	ciphertext, err := getSimpleText(a.reader, "Paste encrypted text", os.Stdout)
	if err != nil {
		return err
	}

	plaintext, err := a.engine.DecryptNote(ctx, ciphertext)
	if err != nil {
		return a.report(err)
	}

	printlnFn("Decrypted:", plaintext)
	return nil
}

// Logs prints the audit trail, oldest first.
func (a *App) Logs(ctx context.Context) error {
	entries, err := a.engine.AuditLog(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(entries) == 0 {
		printlnFn("No security events recorded.")
		return nil
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%s  %-12s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action))
	}
	return nil
}
