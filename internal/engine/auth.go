package engine

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"securebank/internal/codec"
	"securebank/internal/common"
	"securebank/internal/models"
	"securebank/internal/rules"
)

// SessionInfo is returned on successful login. The token is the UI's handle
// on the session; its lifetime tracks the idle threshold.
type SessionInfo struct {
	Username  string
	Token     string
	StartedAt int64
}

const maxUsernameLen = 50

// Register creates an account. Checks run in fixed order: required fields,
// username length, sanitization stability, availability, email shape,
// password policy, confirmation match. Registration never auto-logins.
func (e *Engine) Register(ctx context.Context, username, email, password, confirm string) (acc *models.Account, err error) {
	defer e.guard(ctx, "register", "Registration failed.", &err)
	e.Touch()

	if username == "" || email == "" || password == "" || confirm == "" {
		return nil, common.E(common.KindValidation, "All fields are required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return nil, common.E(common.KindValidation, "Username too long (max 50 characters)")
	}
	if rules.SanitizeUsername(username) != username {
		return nil, common.E(common.KindValidation, "Username contains invalid characters")
	}
	exists, xerr := e.accounts.Exists(ctx, username)
	if xerr != nil {
		return nil, common.E(common.KindInternal, "Registration failed.")
	}
	if exists {
		return nil, common.E(common.KindValidation, "Username already exists")
	}
	if !rules.ValidateEmail(email) {
		return nil, common.E(common.KindValidation, "Invalid email format")
	}
	if perr := rules.ValidatePassword(password); perr != nil {
		return nil, common.E(common.KindPolicy, perr.Error())
	}
	if password != confirm {
		return nil, common.E(common.KindValidation, "Passwords do not match")
	}

	account := &models.Account{
		Username:        username,
		PasswordDigest:  codec.Digest(password, e.cfg.PasswordSalt),
		ObfuscatedEmail: codec.ObfuscateEmail(email),
		CreatedAt:       e.now(),
	}
	if cerr := e.accounts.Create(ctx, account, e.cfg.SeedBalance); cerr != nil {
		if errors.Is(cerr, common.ErrorDuplicate) {
			return nil, common.E(common.KindValidation, "Username already exists")
		}
		return nil, common.E(common.KindInternal, "Registration failed.")
	}

	e.collector.RecordRegistration()
	e.collector.SetBalance(username, e.cfg.SeedBalance.InexactFloat64())
	e.audit(ctx, fmt.Sprintf("User registered: %s", username))
	e.log.Info(ctx, "user registered", "username", username)
	return account, nil
}

// Login authenticates a user. The checks run in fixed order: required
// fields, injection screen, lockout, existence + digest match. A locked
// account rejects the attempt without touching the counter or revealing
// whether the password was correct.
func (e *Engine) Login(ctx context.Context, username, password string) (si *SessionInfo, err error) {
	defer e.guard(ctx, "login", "Login failed.", &err)
	e.Touch()

	if username == "" || password == "" {
		return nil, common.E(common.KindValidation, "All fields are required")
	}
	if serr := rules.ScreenUsername(username); serr != nil {
		e.audit(ctx, "Rejected suspicious login input")
		e.collector.RecordLogin("rejected")
		return nil, common.E(common.KindAuth, serr.Error())
	}
	if e.lockouts.IsLocked(username) {
		e.audit(ctx, fmt.Sprintf("Blocked login attempt for locked account: %s", username))
		e.collector.RecordLogin("locked")
		return nil, common.E(common.KindLocked, "Account locked due to multiple failed login attempts")
	}

	account, gerr := e.accounts.Get(ctx, username)
	if gerr != nil && !errors.Is(gerr, common.ErrorNotFound) {
		return nil, common.E(common.KindInternal, "Login failed.")
	}
	if account == nil || account.PasswordDigest != codec.Digest(password, e.cfg.PasswordSalt) {
		st := e.lockouts.RecordFailure(username)
		if st.Locked && st.FailedAttempts == e.cfg.LockoutThreshold {
			e.audit(ctx, fmt.Sprintf("Account locked: %s after %d failed attempts", username, st.FailedAttempts))
			e.collector.RecordLockout()
			e.collector.RecordLogin("locked")
			e.log.Warn(ctx, "account locked", "username", username, "attempts", st.FailedAttempts)
			return nil, common.E(common.KindLocked, "Account locked due to multiple failed attempts")
		}
		e.audit(ctx, fmt.Sprintf("Failed login attempt: %s", username))
		e.collector.RecordLogin("failure")
		return nil, common.E(common.KindAuth, "Invalid credentials")
	}

	e.lockouts.RecordSuccess(username)
	now := e.now()
	e.sessions.Start(username, now)
	token, terr := e.tokens.Issue(username, now)
	if terr != nil {
		e.sessions.Clear()
		return nil, common.E(common.KindInternal, "Login failed.")
	}
	e.startWatcher()
	e.audit(ctx, fmt.Sprintf("User logged in: %s", username))
	e.collector.RecordLogin("success")
	e.log.Info(ctx, "user logged in", "username", username)
	return &SessionInfo{Username: username, Token: token, StartedAt: now.Unix()}, nil
}

// Logout ends the active session. Idempotent when already anonymous.
func (e *Engine) Logout(ctx context.Context) error {
	username, ok := e.sessions.Identity()
	if !ok {
		return nil
	}
	e.audit(ctx, fmt.Sprintf("User logged out: %s", username))
	e.sessions.Clear()
	e.stopWatcher()
	e.log.Info(ctx, "user logged out", "username", username)
	return nil
}

// ActiveSession verifies a session token against the live session and
// returns the username it belongs to.
func (e *Engine) ActiveSession(token string) (string, error) {
	username, err := e.tokens.Verify(token)
	if err != nil {
		return "", common.E(common.KindAuth, "Invalid session")
	}
	current, ok := e.sessions.Identity()
	if !ok || current != username {
		return "", common.E(common.KindAuth, "Invalid session")
	}
	return username, nil
}

// UpdateProfile changes email and/or password for the active identity. Only
// supplied fields change; the current password must match first.
func (e *Engine) UpdateProfile(ctx context.Context, currentPassword, newEmail, newPassword string) (acc *models.Account, err error) {
	defer e.guard(ctx, "update_profile", "Profile update failed", &err)
	e.Touch()

	username, ok := e.sessions.Identity()
	if !ok {
		return nil, common.E(common.KindAuth, "Not logged in")
	}
	if currentPassword == "" {
		return nil, common.E(common.KindValidation, "Current password required")
	}

	account, gerr := e.accounts.Get(ctx, username)
	if gerr != nil {
		return nil, common.E(common.KindInternal, "Profile update failed")
	}
	if account.PasswordDigest != codec.Digest(currentPassword, e.cfg.PasswordSalt) {
		e.audit(ctx, fmt.Sprintf("Profile update rejected for %s: incorrect password", username))
		return nil, common.E(common.KindAuth, "Current password is incorrect")
	}

	if newEmail != "" && !rules.ValidateEmail(newEmail) {
		return nil, common.E(common.KindValidation, "Invalid email format")
	}
	if newPassword != "" {
		if perr := rules.ValidatePassword(newPassword); perr != nil {
			return nil, common.E(common.KindPolicy, perr.Error())
		}
	}

	if newEmail != "" {
		account.ObfuscatedEmail = codec.ObfuscateEmail(newEmail)
	}
	if newPassword != "" {
		account.PasswordDigest = codec.Digest(newPassword, e.cfg.PasswordSalt)
	}
	if uerr := e.accounts.Update(ctx, account); uerr != nil {
		return nil, common.E(common.KindInternal, "Profile update failed")
	}

	e.audit(ctx, fmt.Sprintf("Profile updated: %s", username))
	e.log.Info(ctx, "profile updated", "username", username)
	return account, nil
}
