package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	// Allow reports whether username may attempt a login right now.
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type noThrottle struct{}

func (noThrottle) Allow(context.Context, string) (bool, error)  { return true, nil }
func (noThrottle) RecordFailure(context.Context, string) error { return nil }
func (noThrottle) Reset(context.Context, string) error         { return nil }

// Registration bounds. Lengths are in characters except the password
// maximum, which is bcrypt's input limit in bytes.
const (
	minUsernameLen   = 3
	maxUsernameLen   = 50
	maxEmailLen      = 100
	minPasswordLen   = 6
	maxPasswordBytes = 72
)

var emailCheck = validator.New()

const (
	msgRegistered = "User registered successfully"
	msgLoggedIn   = "Login successful"
)

// AuthService implements registration, login and token authentication.
type AuthService struct {
	repo     ports.UserRepository
	codec    ports.TokenCodec
	hasher   ports.PasswordHasher
	throttle LoginThrottle
	log      zerolog.Logger
	now      func() time.Time

	// dummyHash is compared against when the username is unknown so both
	// failure paths pay for one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithLoginThrottle enables failed-login lockout.
func WithLoginThrottle(t LoginThrottle) AuthOption {
	return func(s *AuthService) {
		if t != nil {
			s.throttle = t
		}
	}
}

func NewAuthService(
	repo ports.UserRepository,
	codec ports.TokenCodec,
	hasher ports.PasswordHasher,
	log zerolog.Logger,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		repo:     repo,
		codec:    codec,
		hasher:   hasher,
		throttle: noThrottle{},
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an active identity and issues its first token. Nothing is
// written when any precondition fails.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if err := validateRegistration(username, email, in.Password); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, domain.Errorf(domain.ErrDuplicateIdentity, "username already exists")
	}
	exists, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, domain.Errorf(domain.ErrDuplicateIdentity, "email already exists")
	}

	role, err := domain.ResolveRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(created.Username, created.Role)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role.String()).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created, Message: msgRegistered}, nil
}

// validateRegistration applies the registration rules every entry point
// shares, whether the request came over HTTP or from the CLI.
func validateRegistration(username, email, password string) error {
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return domain.Errorf(domain.ErrInvalidInput, "username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if email == "" {
		return domain.Errorf(domain.ErrInvalidInput, "email is required")
	}
	if utf8.RuneCountInString(email) > maxEmailLen || emailCheck.Var(email, "email") != nil {
		return domain.Errorf(domain.ErrInvalidInput, "email must be a valid email")
	}
	if password == "" {
		return domain.Errorf(domain.ErrInvalidInput, "password is required")
	}
	if utf8.RuneCountInString(password) < minPasswordLen || len(password) > maxPasswordBytes {
		return domain.Errorf(domain.ErrInvalidInput, "password must be between %d and %d characters", minPasswordLen, maxPasswordBytes)
	}
	return nil
}

// Login verifies credentials and issues a fresh token. Unknown usernames,
// inactive identities and wrong passwords all fail with the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrAuthenticationFailed
	}

	allowed, err := s.throttle.Allow(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
	} else if !allowed {
		s.log.Warn().Str("username", username).Msg("login locked out")
		return nil, domain.Errorf(domain.ErrTooManyAttempts, "too many failed login attempts, try again later")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_ = s.hasher.Compare(s.timingHash(), password)
		return nil, s.loginFailed(ctx, username)
	case err != nil:
		return nil, fmt.Errorf("login: %w", err)
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil || !user.Active {
		return nil, s.loginFailed(ctx, username)
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle reset failed")
	}

	token, err := s.codec.Issue(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return &ports.AuthResult{Token: token, User: user, Message: msgLoggedIn}, nil
}

func (s *AuthService) loginFailed(ctx context.Context, username string) error {
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle record failed")
	}
	s.log.Warn().Str("username", username).Msg("login failed")
	return domain.ErrAuthenticationFailed
}

func (s *AuthService) timingHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("timing-equaliser")
	})
	return s.dummyHash
}

// Authenticate accepts a token only when its signature verifies, it has not
// expired and its subject is still an existing, active identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}
	if s.codec.IsExpired(claims) {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.repo.FindByUsername(ctx, claims.Subject)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthenticated
	case err != nil:
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !user.Active {
		return nil, domain.ErrUnauthenticated
	}

	return &domain.Principal{Username: user.Username, Role: claims.Role}, nil
}
