package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuthRequired is returned when an operation needs a signed-in user.
var ErrAuthRequired = errors.New("please sign in to continue")

// ValidationError reports malformed user input on a single field. It is
// rendered inline next to the field and is recoverable by re-submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IdentityProviderError wraps a failure from the hosted identity provider.
// Message is already the user-facing string from the friendly-message table.
type IdentityProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *IdentityProviderError) Error() string { return e.Message }
func (e *IdentityProviderError) Unwrap() error { return e.Err }

// CheckoutBlockedError is returned when checkout admission fails. It carries
// the offending lines so the caller can render a precise, multi-line message.
type CheckoutBlockedError struct {
	Reason string
	Lines  []CartLine
}

func (e *CheckoutBlockedError) Error() string {
	if len(e.Lines) == 0 {
		return e.Reason
	}
	msgs := make([]string, 0, len(e.Lines)+1)
	msgs = append(msgs, "Cannot proceed to checkout:")
	for _, l := range e.Lines {
		msgs = append(msgs, fmt.Sprintf("Only %d units of %s available.", l.Stock, l.Name))
	}
	return strings.Join(msgs, "\n")
}

// InvalidImageError rejects an avatar upload.
type InvalidImageError struct {
	Reason string
}

func (e *InvalidImageError) Error() string { return e.Reason }
