package users_models

import "github.com/google/uuid"

type UsersSettings struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	// means that anyone can register via the sign up form without invitation
	IsAllowExternalRegistrations bool `json:"isAllowExternalRegistrations"  gorm:"column:is_allow_external_registrations"`
	// means that any user with role USER can invite other users
	IsAllowUserInvitations bool `json:"isAllowUserInvitations"        gorm:"column:is_allow_user_invitations"`
	// means that any user with role USER can create their own projects
	IsUserAllowedToCreateProjects bool `json:"isUserAllowedToCreateProjects" gorm:"column:is_user_allowed_to_create_projects"`
}

func (UsersSettings) TableName() string {
	return "users_settings"
}
