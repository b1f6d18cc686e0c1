package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

// UserService administers identities. The acting username is always an
// explicit argument; nothing is read from ambient request state.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) ListUsers(ctx context.Context, actingUsername string) ([]ports.UserSummary, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role.String(),
			CanDelete: u.Username != actingUsername,
		})
	}
	return out, nil
}

// DeleteUser hard-deletes the target. An actor can never delete itself.
func (s *UserService) DeleteUser(ctx context.Context, targetID int64, actingUsername string) error {
	target, err := s.find(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Username == actingUsername {
		s.log.Warn().Str("username", actingUsername).Msg("refused self deletion")
		return domain.Errorf(domain.ErrSelfActionForbidden, "super admin cannot delete themselves")
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return userNotFound(targetID)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().Str("actor", actingUsername).Str("username", target.Username).Int64("user_id", targetID).Msg("user deleted")
	return nil
}

// UpdateUserRole overwrites the target's role. The self check runs before
// the role is parsed, so a self-targeted request is always refused as such.
func (s *UserService) UpdateUserRole(ctx context.Context, targetID int64, newRole, actingUsername string) error {
	target, err := s.find(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Username == actingUsername {
		s.log.Warn().Str("username", actingUsername).Msg("refused self role change")
		return domain.Errorf(domain.ErrSelfActionForbidden, "super admin cannot change their own role")
	}

	role, err := domain.ParseRole(newRole)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateRole(ctx, targetID, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return userNotFound(targetID)
		}
		return fmt.Errorf("update user role: %w", err)
	}

	s.log.Info().
		Str("actor", actingUsername).
		Str("username", target.Username).
		Str("from", target.Role.String()).
		Str("to", role.String()).
		Msg("user role changed")
	return nil
}

func (s *UserService) find(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, userNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func userNotFound(id int64) error {
	return domain.Errorf(domain.ErrNotFound, "user not found with id: %d", id)
}
