package domain

import "time"

// SessionClaims is the decoded payload of a session token.
type SessionClaims struct {
	ID        string
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the claims' expiry is strictly before now.
func (c SessionClaims) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}
