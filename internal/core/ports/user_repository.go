package ports

import (
	"context"

	"github.com/driverportal/portal-api/internal/core/domain"
)

// UserRepository is the credential store boundary. Implementations must
// enforce username and email uniqueness themselves; the services' existence
// checks are a fast path for better error messages, not the guarantee.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create assigns the numeric id and returns the stored identity.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.User, error)
}
