package projects_services

import (
	"orilla/internal/cache"
	accounts_services "orilla/internal/features/accounts/services"
	"orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
	projects_interfaces "orilla/internal/features/projects/interfaces"
	projects_models "orilla/internal/features/projects/models"
	projects_repositories "orilla/internal/features/projects/repositories"
	users_services "orilla/internal/features/users/services"
	cache_utils "orilla/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository,
	membershipRepository,
	users_services.GetUserService(),
	organizations_services.GetOrganizationService(),
	accounts_services.GetAccountService(),
	audit_logs.GetAuditLogService(),
	users_services.GetSettingsService(),
	[]projects_interfaces.ProjectDeletionListener{},
	cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "orilla_project:"),
	singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository,
	projectRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	projectService,
	users_services.GetSettingsService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

// SetupDependencies registers cross-feature guards that must not be wired at
// package init time.
func SetupDependencies() {
	organizations_services.GetOrganizationService().AddDeletionListener(projectService)
	accounts_services.GetAccountService().AddDeletionListener(projectService)
}
