package ports

import (
	"context"

	"github.com/driverportal/portal-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request. Role may be
// blank, in which case USER is assigned.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token   string
	User    *domain.User
	Message string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	// Authenticate validates a bearer token and resolves its subject to a
	// current, active identity.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}
