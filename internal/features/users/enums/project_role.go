package users_enums

// ProjectRole is the role a user holds on one project. It governs approval
// capability in the time-sheet review workflow.
type ProjectRole string

const (
	ProjectRoleOwner    ProjectRole = "OWNER"
	ProjectRoleExpert   ProjectRole = "EXPERT"
	ProjectRoleReviewer ProjectRole = "REVIEWER"
	ProjectRoleClient   ProjectRole = "CLIENT"
	ProjectRoleViewer   ProjectRole = "VIEWER"
)

func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleOwner, ProjectRoleExpert, ProjectRoleReviewer, ProjectRoleClient, ProjectRoleViewer:
		return true
	default:
		return false
	}
}
