package ports

import "context"

// UserSummary is the public profile shown in user listings. CanDelete is a
// UI hint only; enforcement happens in DeleteUser and UpdateUserRole.
type UserSummary struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	CanDelete bool
}

// UserService is the privileged user administration surface. The acting
// username is always passed explicitly.
type UserService interface {
	ListUsers(ctx context.Context, actingUsername string) ([]UserSummary, error)
	DeleteUser(ctx context.Context, targetID int64, actingUsername string) error
	UpdateUserRole(ctx context.Context, targetID int64, newRole, actingUsername string) error
}
