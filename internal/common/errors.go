// Package common defines shared sentinel errors and the kinded operation
// error returned by every engine operation. Callers should use errors.Is to
// match sentinel values and KindOf to classify failures for display.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorDuplicate = errors.New("already exists")

	// Balance-specific errors.
	ErrorInsufficientFunds = errors.New("insufficient funds")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)

// Kind classifies an operation failure. Together with the message it forms
// the {ok:false, kind, message} half of the result contract the UI renders.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindLocked     Kind = "locked"
	KindPolicy     Kind = "policy"
	KindTransfer   Kind = "transfer"
	KindCodec      Kind = "codec"
	KindInternal   Kind = "internal"
)

// OpError carries a failure kind plus the exact user-facing message.
type OpError struct {
	Kind    Kind
	Message string
}

func (e *OpError) Error() string { return e.Message }

// E builds an OpError.
func E(kind Kind, message string) *OpError {
	return &OpError{Kind: kind, Message: message}
}

// KindOf returns the kind of err, or KindInternal for anything that is not
// an OpError. A nil error has no kind and yields the empty string.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindInternal
}
