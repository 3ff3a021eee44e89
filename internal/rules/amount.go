package rules

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountFormat       = errors.New("Invalid input format.")
	ErrAmountZeroDivision = errors.New("Zero division error.")
	ErrAmountInvalid      = errors.New("Invalid amount.")
	ErrAmountNotPositive  = errors.New("Amount must be positive.")
	ErrAmountBelowMinimum = errors.New("Minimum transfer amount is $1.")
	ErrAmountOverLimit    = errors.New("Transfer limit exceeded (max: $100,000)")
)

var (
	// Anything outside digits, '.', '-', '/', '=' and space is a format error.
	amountCharsRe = regexp.MustCompile(`[^0-9.\-/= ]`)
	// A "/0" not followed by another digit is treated as a divide-by-zero
	// expression and rejected before parsing.
	zeroDivRe = regexp.MustCompile(`/0([^0-9]|$)`)
	// Longest leading numeric run, with optional sign and fraction.
	numPrefixRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// ParseTransferAmount turns raw user input into a transfer amount, applying
// the checks in a fixed order so the most specific error is reported first:
// character set, divide-by-zero pattern, numeric parse, sign, minimum unit,
// per-transfer ceiling.
func ParseTransferAmount(raw string, min, max decimal.Decimal) (decimal.Decimal, error) {
	if amountCharsRe.MatchString(raw) {
		return decimal.Zero, ErrAmountFormat
	}
	if zeroDivRe.MatchString(raw) {
		return decimal.Zero, ErrAmountZeroDivision
	}

	// parseFloat semantics: ignore leading spaces, read the longest numeric
	// prefix, discard the rest.
	prefix := numPrefixRe.FindString(strings.TrimLeft(raw, " "))
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" || prefix == "+" || prefix == "-" {
		return decimal.Zero, ErrAmountInvalid
	}
	amount, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, ErrAmountInvalid
	}

	if amount.IsNegative() {
		return decimal.Zero, ErrAmountNotPositive
	}
	if amount.LessThan(min) {
		return decimal.Zero, ErrAmountBelowMinimum
	}
	if amount.GreaterThan(max) {
		return decimal.Zero, ErrAmountOverLimit
	}
	return amount, nil
}
