package ports

import "github.com/driverportal/portal-api/internal/core/domain"

// TokenCodec issues and parses signed session tokens.
type TokenCodec interface {
	Issue(subject string, role domain.Role) (string, error)
	// Verify checks the signature and decodes the claims. It does not check
	// expiry; see IsExpired.
	Verify(token string) (*domain.SessionClaims, error)
	IsExpired(claims *domain.SessionClaims) bool
}

// PasswordHasher is the one-way password verifier.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}

// AccessPolicy decides whether a role may invoke an operation.
type AccessPolicy interface {
	// Authorize returns an error wrapping domain.ErrForbidden when denied.
	Authorize(role domain.Role, op domain.Operation) error
}
