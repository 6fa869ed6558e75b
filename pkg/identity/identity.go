// Package identity checks email/password credentials against an account provider.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidCredentials means the provider answered and refused the credentials.
// Any other error means the provider could not be reached or misbehaved.
var ErrInvalidCredentials = errors.New("invalid email or password")

// User is the account a provider vouched for.
type User struct {
	ID    string
	Email string
}

// Provider verifies a password sign-in.
type Provider interface {
	VerifyPassword(ctx context.Context, email, password string) (User, error)
}
