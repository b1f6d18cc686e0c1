// Package policy holds the static role/operation table and answers
// authorization questions against it.
package policy

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/driverportal/portal-api/internal/core/domain"
)

//go:embed model.conf
var modelText string

// Each role inherits every grant of the role below it.
var hierarchy = [][2]domain.Role{
	{domain.RoleSuperAdmin, domain.RoleAdmin},
	{domain.RoleAdmin, domain.RoleUser},
}

// grants lists only what a role adds on top of what it inherits.
var grants = map[domain.Role][]domain.Operation{
	domain.RoleUser: {
		domain.OpCompanyRead, domain.OpCompanySearch,
		domain.OpDriverRead, domain.OpDriverSearch,
	},
	domain.RoleAdmin: {
		domain.OpCompanyCreate, domain.OpCompanyUpdate,
		domain.OpDriverCreate, domain.OpDriverUpdate,
	},
	domain.RoleSuperAdmin: {
		domain.OpCompanyDelete, domain.OpDriverDelete,
		domain.OpUserList, domain.OpUserDelete, domain.OpUserUpdateRole,
	},
}

// Policy is a read-only access table. It is fixed at construction.
type Policy struct {
	enforcer *casbin.SyncedEnforcer
}

// New builds the in-memory policy. No adapter is attached, so nothing is
// ever loaded from or persisted to storage.
func New() (*Policy, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("policy model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("policy enforcer: %w", err)
	}

	for _, link := range hierarchy {
		if _, err := e.AddGroupingPolicy(string(link[0]), string(link[1])); err != nil {
			return nil, fmt.Errorf("policy hierarchy %s -> %s: %w", link[0], link[1], err)
		}
	}
	for role, ops := range grants {
		for _, op := range ops {
			if _, err := e.AddPolicy(string(role), string(op)); err != nil {
				return nil, fmt.Errorf("policy grant %s %s: %w", role, op, err)
			}
		}
	}
	return &Policy{enforcer: e}, nil
}

// Authorize returns nil when role may perform op, ErrForbidden when it may
// not. An invalid role is always denied.
func (p *Policy) Authorize(role domain.Role, op domain.Operation) error {
	if !role.Valid() {
		return domain.Errorf(domain.ErrForbidden, "access denied")
	}
	ok, err := p.enforcer.Enforce(string(role), string(op))
	if err != nil {
		return fmt.Errorf("authorize %s %s: %w", role, op, err)
	}
	if !ok {
		return domain.Errorf(domain.ErrForbidden, "access denied")
	}
	return nil
}

// Allowed lists the operations role may perform, for introspection.
func (p *Policy) Allowed(role domain.Role) []domain.Operation {
	var out []domain.Operation
	for _, r := range domain.Roles() {
		for _, op := range grants[r] {
			if p.Authorize(role, op) == nil {
				out = append(out, op)
			}
		}
	}
	return out
}
