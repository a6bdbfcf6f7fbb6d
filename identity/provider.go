// Package identity is the boundary to the hosted identity provider. The
// storefront never stores passwords; registration, sign-in and email
// verification are delegated through the Provider interface.
package identity

import "context"

// UserRecord is the provider-owned identity attributes.
type UserRecord struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
}

type Provider interface {
	// Register creates a new account with email/password credentials.
	Register(ctx context.Context, email, password, displayName string) (*UserRecord, error)

	// VerifyIDToken validates a provider-issued ID token (the popup sign-in
	// flow lands here) and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*UserRecord, error)

	// UpdateDisplayName sets the provider-side display name.
	UpdateDisplayName(ctx context.Context, uid, displayName string) error

	// SendEmailVerification triggers the provider's verification mail.
	SendEmailVerification(ctx context.Context, email string) error
}
