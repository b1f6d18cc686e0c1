package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driverportal/portal-api/internal/core/domain"
)

func TestAuthorize_Table(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	u, a, s := domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin
	allowed := map[domain.Operation][]domain.Role{
		domain.OpCompanyRead:    {u, a, s},
		domain.OpCompanySearch:  {u, a, s},
		domain.OpCompanyCreate:  {a, s},
		domain.OpCompanyUpdate:  {a, s},
		domain.OpCompanyDelete:  {s},
		domain.OpDriverRead:     {u, a, s},
		domain.OpDriverSearch:   {u, a, s},
		domain.OpDriverCreate:   {a, s},
		domain.OpDriverUpdate:   {a, s},
		domain.OpDriverDelete:   {s},
		domain.OpUserList:       {s},
		domain.OpUserDelete:     {s},
		domain.OpUserUpdateRole: {s},
	}

	for op, roles := range allowed {
		for _, role := range domain.Roles() {
			want := false
			for _, r := range roles {
				if r == role {
					want = true
				}
			}
			err := p.Authorize(role, op)
			if want {
				require.NoError(t, err, "%s should be allowed %s", role, op)
			} else {
				require.ErrorIs(t, err, domain.ErrForbidden, "%s should be denied %s", role, op)
			}
		}
	}
}

func TestAuthorize_UnknownOperationDenied(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	require.ErrorIs(t, p.Authorize(domain.RoleSuperAdmin, domain.Operation("billing:refund")), domain.ErrForbidden)
}

func TestAuthorize_InvalidRoleDenied(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	require.ErrorIs(t, p.Authorize(domain.Role("ROOT"), domain.OpCompanyRead), domain.ErrForbidden)
	require.ErrorIs(t, p.Authorize(domain.Role(""), domain.OpCompanyRead), domain.ErrForbidden)
}

func TestAllowed_IsMonotonic(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	require.Len(t, p.Allowed(domain.RoleUser), 4)
	require.Len(t, p.Allowed(domain.RoleAdmin), 8)
	require.Len(t, p.Allowed(domain.RoleSuperAdmin), 13)
	require.Subset(t, p.Allowed(domain.RoleSuperAdmin), p.Allowed(domain.RoleAdmin))
	require.Subset(t, p.Allowed(domain.RoleAdmin), p.Allowed(domain.RoleUser))
}
