package organizations_services

import (
	audit_logs "orilla/internal/features/audit_logs"
	organizations_interfaces "orilla/internal/features/organizations/interfaces"
	organizations_repositories "orilla/internal/features/organizations/repositories"
)

var organizationRepository = &organizations_repositories.OrganizationRepository{}

var organizationService = &OrganizationService{
	organizationRepository,
	audit_logs.GetAuditLogService(),
	[]organizations_interfaces.OrganizationDeletionListener{},
}

func GetOrganizationService() *OrganizationService {
	return organizationService
}
