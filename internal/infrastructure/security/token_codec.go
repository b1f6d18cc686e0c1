package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/driverportal/portal-api/internal/core/domain"
)

// DefaultTokenTTL is used when the configured TTL is not positive.
const DefaultTokenTTL = 24 * time.Hour

// sessionClaims is the JWT payload: sub, iat, exp, jti plus the role claim.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenCodec issues and parses HS256 session tokens with a single
// process-wide key. Changing the key invalidates every outstanding token.
type TokenCodec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// CodecOption customises a TokenCodec.
type CodecOption func(*TokenCodec)

// WithClock overrides the codec's time source.
func WithClock(now func() time.Time) CodecOption {
	return func(c *TokenCodec) { c.now = now }
}

// NewTokenCodec returns a codec signing with secret. The secret is copied.
func NewTokenCodec(secret []byte, ttl time.Duration, opts ...CodecOption) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	key := make([]byte, len(secret))
	copy(key, secret)

	c := &TokenCodec{key: key, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the lifetime given to newly issued tokens.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

// Issue signs a token for subject carrying role, valid from now for the TTL.
func (c *TokenCodec) Issue(subject string, role domain.Role) (string, error) {
	if subject == "" {
		return "", errors.New("issue token: empty subject")
	}
	if !role.Valid() {
		return "", fmt.Errorf("issue token: %w", domain.ErrInvalidRole)
	}

	now := c.now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Role: string(role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature first and only then decodes the claims.
// Expiry is deliberately not checked here so that an expired but authentic
// token can be told apart from a forged one; use IsExpired.
func (c *TokenCodec) Verify(token string) (*domain.SessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, domain.ErrSignatureInvalid
		}
		return nil, domain.ErrMalformedToken
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrMalformedToken
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrMalformedToken
	}

	out := &domain.SessionClaims{
		ID:        claims.ID,
		Subject:   claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

// IsExpired reports whether the claims' expiry is strictly before now.
func (c *TokenCodec) IsExpired(claims *domain.SessionClaims) bool {
	return claims.ExpiredAt(c.now())
}
