package users_testing

import (
	users_repositories "orilla/internal/features/users/repositories"
)

func EnableUserInvitations() {
	updateUsersSetting("is_allow_user_invitations", true)
}

func DisableUserInvitations() {
	updateUsersSetting("is_allow_user_invitations", false)
}

func EnableExternalRegistrations() {
	updateUsersSetting("is_allow_external_registrations", true)
}

func DisableExternalRegistrations() {
	updateUsersSetting("is_allow_external_registrations", false)
}

func EnableUserProjectCreation() {
	updateUsersSetting("is_user_allowed_to_create_projects", true)
}

func DisableUserProjectCreation() {
	updateUsersSetting("is_user_allowed_to_create_projects", false)
}

func ResetSettingsToDefaults() {
	repository := &users_repositories.UsersSettingsRepository{}
	settings, err := repository.GetSettings()
	if err != nil {
		panic(err)
	}

	settings.IsAllowExternalRegistrations = true
	settings.IsAllowUserInvitations = true
	settings.IsUserAllowedToCreateProjects = true

	if err := repository.UpdateSettings(settings); err != nil {
		panic(err)
	}
}

func updateUsersSetting(column string, value bool) {
	repository := &users_repositories.UsersSettingsRepository{}
	settings, err := repository.GetSettings()
	if err != nil {
		panic(err)
	}

	switch column {
	case "is_allow_user_invitations":
		settings.IsAllowUserInvitations = value
	case "is_allow_external_registrations":
		settings.IsAllowExternalRegistrations = value
	case "is_user_allowed_to_create_projects":
		settings.IsUserAllowedToCreateProjects = value
	}

	if err := repository.UpdateSettings(settings); err != nil {
		panic(err)
	}
}
