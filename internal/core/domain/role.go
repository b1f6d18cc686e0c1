package domain

import "strings"

// Role is the closed set of access levels an identity can hold.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Roles lists every valid role, least privileged first.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleSuperAdmin}
}

// Valid reports whether r is one of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole matches s case-insensitively against the role set. Anything else
// fails with ErrInvalidRole; unknown values are never coerced.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", Errorf(ErrInvalidRole, "invalid role %q: must be one of USER, ADMIN, SUPER_ADMIN", s)
	}
	return r, nil
}

// ResolveRole is ParseRole with a default: a blank value resolves to RoleUser.
func ResolveRole(s string) (Role, error) {
	if strings.TrimSpace(s) == "" {
		return RoleUser, nil
	}
	return ParseRole(s)
}
