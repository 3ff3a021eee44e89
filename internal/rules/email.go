package rules

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email has the conventional local@domain.tld
// shape.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}
