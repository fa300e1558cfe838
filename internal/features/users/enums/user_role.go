package users_enums

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleUser       UserRole = "USER"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleSuperAdmin, UserRoleAdmin, UserRoleUser:
		return true
	default:
		return false
	}
}

// IsSystemAdmin reports whether the role carries organisation-wide
// administrative authority, independent of any project membership.
func (r UserRole) IsSystemAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}
