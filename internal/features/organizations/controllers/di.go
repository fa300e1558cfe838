package organizations_controllers

import (
	organizations_services "orilla/internal/features/organizations/services"
)

var organizationController = &OrganizationController{
	organizations_services.GetOrganizationService(),
}

func GetOrganizationController() *OrganizationController {
	return organizationController
}
