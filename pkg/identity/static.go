package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// StaticUser is a configured account with a bcrypt password hash.
type StaticUser struct {
	ID           string
	Email        string
	PasswordHash string
}

type staticProvider struct {
	users map[string]StaticUser
}

// NewStatic serves a fixed set of accounts, for local development without Firebase.
// Emails are matched case-insensitively.
func NewStatic(users []StaticUser) Provider {
	m := make(map[string]StaticUser, len(users))
	for _, u := range users {
		m[strings.ToLower(strings.TrimSpace(u.Email))] = u
	}
	return &staticProvider{users: m}
}

func (p *staticProvider) VerifyPassword(ctx context.Context, email, password string) (User, error) {
	u, ok := p.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	id := u.ID
	if id == "" {
		id = u.Email
	}
	return User{ID: id, Email: u.Email}, nil
}
