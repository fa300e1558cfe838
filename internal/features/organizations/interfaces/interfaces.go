package organizations_interfaces

import "github.com/google/uuid"

type OrganizationDeletionListener interface {
	OnBeforeOrganizationDeletion(organizationID uuid.UUID) error
}
