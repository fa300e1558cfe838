package organizations_repositories

import (
	"time"

	organizations_models "orilla/internal/features/organizations/models"
	"orilla/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository struct{}

func (r *OrganizationRepository) CreateOrganization(organization *organizations_models.Organization) error {
	if organization.ID == uuid.Nil {
		organization.ID = uuid.New()
	}
	if organization.CreatedAt.IsZero() {
		organization.CreatedAt = time.Now().UTC()
	}
	organization.UpdatedAt = time.Now().UTC()

	return storage.GetDb().Create(organization).Error
}

func (r *OrganizationRepository) GetOrganizationByID(
	organizationID uuid.UUID,
) (*organizations_models.Organization, error) {
	var organization organizations_models.Organization

	if err := storage.GetDb().Where("id = ?", organizationID).First(&organization).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &organization, nil
}

func (r *OrganizationRepository) GetOrganizationByName(name string) (*organizations_models.Organization, error) {
	var organization organizations_models.Organization

	if err := storage.GetDb().Where("name = ?", name).First(&organization).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &organization, nil
}

func (r *OrganizationRepository) UpdateOrganization(organization *organizations_models.Organization) error {
	organization.UpdatedAt = time.Now().UTC()

	return storage.GetDb().Save(organization).Error
}

func (r *OrganizationRepository) DeleteOrganization(organizationID uuid.UUID) error {
	return storage.GetDb().Delete(&organizations_models.Organization{}, organizationID).Error
}

func (r *OrganizationRepository) GetAllOrganizations() ([]*organizations_models.Organization, error) {
	var organizations []*organizations_models.Organization

	err := storage.GetDb().Order("name ASC").Find(&organizations).Error

	return organizations, err
}
