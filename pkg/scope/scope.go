// Package scope issues and verifies session tokens (HS256 JWT) and keeps the list
// of sessions ended by sign-out.
package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"inventory-management/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevokedToken = errors.New("session has ended")
)

// DefaultMaxRevoked bounds the revocation list when no WithMaxRevoked option is given.
const DefaultMaxRevoked = 10000

// Manager issues and checks session tokens.
type Manager interface {
	Issue(userID, email string) (string, model.Scope, error)
	Verify(token string) (model.Scope, error)
	// Revoke ends a session before its token expires.
	Revoke(sc model.Scope)
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret  []byte
	ttl     time.Duration
	revoked *expirable.LRU[string, struct{}]
	now     func() time.Time
}

// Option tunes a Manager.
type Option func(*options)

type options struct {
	maxRevoked int
}

// WithMaxRevoked sets how many sign-outs are remembered at once. Size it to at least
// the sign-outs expected within one ttl.
func WithMaxRevoked(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRevoked = n
		}
	}
}

// New creates a Manager. Revoked sessions are remembered for ttl, which outlives any
// token issued. The list holds at most DefaultMaxRevoked entries (see WithMaxRevoked);
// past that the oldest revocation is evicted and its token verifies again until it expires.
func New(secret string, ttl time.Duration, opts ...Option) Manager {
	o := options{maxRevoked: DefaultMaxRevoked}
	for _, opt := range opts {
		opt(&o)
	}
	return &implManager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: expirable.NewLRU[string, struct{}](o.maxRevoked, nil, ttl),
		now:     time.Now,
	}
}

func (m *implManager) Issue(userID, email string) (string, model.Scope, error) {
	now := m.now()
	sc := model.Scope{
		UserID:    userID,
		Email:     email,
		SessionID: uuid.NewString(),
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        sc.SessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sc.ExpiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", model.Scope{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, sc, nil
}

func (m *implManager) Verify(token string) (model.Scope, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if c.ID == "" || c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}
	if m.revoked.Contains(c.ID) {
		return model.Scope{}, ErrRevokedToken
	}

	return model.Scope{
		UserID:    c.Subject,
		Email:     c.Email,
		SessionID: c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

func (m *implManager) Revoke(sc model.Scope) {
	if sc.SessionID == "" {
		return
	}
	m.revoked.Add(sc.SessionID, struct{}{})
}

type scopeKey struct{}

// SetScopeToContext stores the session in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the session stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok
}
