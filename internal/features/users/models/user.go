package users_models

import (
	"time"

	users_enums "orilla/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID              `json:"id"`
	Email                string                 `json:"email"`
	HashedPassword       *string                `json:"-"         gorm:"column:hashed_password"`
	PasswordCreationTime time.Time              `json:"-"         gorm:"column:password_creation_time"`
	Role                 users_enums.UserRole   `json:"role"`
	Status               users_enums.UserStatus `json:"status"`
	CreatedAt            time.Time              `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Permission methods
func (u *User) IsSystemAdmin() bool {
	return u.Role.IsSystemAdmin()
}

func (u *User) CanManageUsers() bool {
	return u.Role.IsSystemAdmin()
}

func (u *User) CanUpdateSettings() bool {
	return u.Role.IsSystemAdmin()
}

func (u *User) CanManageOrganizations() bool {
	return u.Role.IsSystemAdmin()
}

func (u *User) CanInviteUsers(settings *UsersSettings) bool {
	if u.Role.IsSystemAdmin() {
		return true
	}

	return u.Role == users_enums.UserRoleUser && settings.IsAllowUserInvitations
}

func (u *User) CanCreateProjects(settings *UsersSettings) bool {
	if u.Role.IsSystemAdmin() {
		return true
	}

	return u.Role == users_enums.UserRoleUser && settings.IsUserAllowedToCreateProjects
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
