// Package rules implements the ordered validation checks for credentials,
// usernames, transfer amounts, and uploads. Each validator short-circuits on
// the first failing check; the error texts are part of the user-visible
// contract and must not be reworded.
package rules

import (
	"errors"
	"regexp"
)

var (
	ErrPasswordTooShort    = errors.New("Password must be at least 8 characters")
	ErrPasswordNoDigit     = errors.New("Password must contain at least one digit")
	ErrPasswordNoSpecial   = errors.New("Password must contain at least one special character")
	ErrPasswordNoUppercase = errors.New("Password must contain at least one uppercase letter")
)

var (
	digitRe     = regexp.MustCompile(`\d`)
	specialRe   = regexp.MustCompile(`[!@#$%^&*]`)
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
)

// ValidatePassword applies the password policy checks in fixed order and
// returns the first failure: length, digit, special character, uppercase.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if !digitRe.MatchString(password) {
		return ErrPasswordNoDigit
	}
	if !specialRe.MatchString(password) {
		return ErrPasswordNoSpecial
	}
	if !uppercaseRe.MatchString(password) {
		return ErrPasswordNoUppercase
	}
	return nil
}
