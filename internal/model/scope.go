package model

import "time"

// Scope is the authenticated session carried by a bearer token.
type Scope struct {
	UserID    string
	Email     string
	SessionID string
	ExpiresAt time.Time
}
