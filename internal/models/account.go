// Package models holds the domain records shared by the repositories and the
// engine.
package models

import "time"

// Account is a registered identity. Username is unique and immutable; the
// password digest and obfuscated email are opaque strings produced by the
// codec package and are only ever compared or decoded there.
type Account struct {
	Username        string
	PasswordDigest  string
	ObfuscatedEmail string
	CreatedAt       time.Time
}
