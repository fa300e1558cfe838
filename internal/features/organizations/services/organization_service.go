package organizations_services

import (
	"fmt"
	"time"

	"orilla/internal/apperrors"
	audit_logs "orilla/internal/features/audit_logs"
	organizations_dto "orilla/internal/features/organizations/dto"
	organizations_interfaces "orilla/internal/features/organizations/interfaces"
	organizations_models "orilla/internal/features/organizations/models"
	organizations_repositories "orilla/internal/features/organizations/repositories"
	users_models "orilla/internal/features/users/models"

	"github.com/google/uuid"
)

type OrganizationService struct {
	organizationRepository *organizations_repositories.OrganizationRepository
	auditLogService        *audit_logs.AuditLogService
	deletionListeners      []organizations_interfaces.OrganizationDeletionListener
}

func (s *OrganizationService) AddDeletionListener(
	listener organizations_interfaces.OrganizationDeletionListener,
) {
	s.deletionListeners = append(s.deletionListeners, listener)
}

func (s *OrganizationService) CreateOrganization(
	request *organizations_dto.CreateOrganizationRequestDTO,
	creator *users_models.User,
) (*organizations_dto.OrganizationResponseDTO, error) {
	if !creator.CanManageOrganizations() {
		return nil, apperrors.NewPermissionDenied("only administrators can create organizations")
	}

	existing, err := s.organizationRepository.GetOrganizationByName(request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidation("organization with this name already exists")
	}

	organization := &organizations_models.Organization{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		BudgetHours: request.BudgetHours,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.organizationRepository.CreateOrganization(organization); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Organization created: %s", organization.Name),
		&creator.ID,
		nil,
	)

	return toOrganizationResponse(organization), nil
}

func (s *OrganizationService) GetOrganization(
	organizationID uuid.UUID,
) (*organizations_dto.OrganizationResponseDTO, error) {
	organization, err := s.organizationRepository.GetOrganizationByID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if organization == nil {
		return nil, apperrors.NewNotFound("organization")
	}

	return toOrganizationResponse(organization), nil
}

func (s *OrganizationService) GetOrganizationRecord(
	organizationID uuid.UUID,
) (*organizations_models.Organization, error) {
	return s.organizationRepository.GetOrganizationByID(organizationID)
}

func (s *OrganizationService) ListOrganizations() (*organizations_dto.ListOrganizationsResponseDTO, error) {
	organizations, err := s.organizationRepository.GetAllOrganizations()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]organizations_dto.OrganizationResponseDTO, len(organizations))
	for i, organization := range organizations {
		responses[i] = *toOrganizationResponse(organization)
	}

	return &organizations_dto.ListOrganizationsResponseDTO{Organizations: responses}, nil
}

func (s *OrganizationService) UpdateOrganization(
	organizationID uuid.UUID,
	request *organizations_dto.UpdateOrganizationRequestDTO,
	updatedBy *users_models.User,
) (*organizations_dto.OrganizationResponseDTO, error) {
	if !updatedBy.CanManageOrganizations() {
		return nil, apperrors.NewPermissionDenied("only administrators can update organizations")
	}

	organization, err := s.organizationRepository.GetOrganizationByID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if organization == nil {
		return nil, apperrors.NewNotFound("organization")
	}

	if request.Name != organization.Name {
		existing, err := s.organizationRepository.GetOrganizationByName(request.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing organization: %w", err)
		}
		if existing != nil {
			return nil, apperrors.NewValidation("organization with this name already exists")
		}
	}

	organization.Name = request.Name
	organization.Description = request.Description
	organization.BudgetHours = request.BudgetHours

	if err := s.organizationRepository.UpdateOrganization(organization); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Organization updated: %s", organization.Name),
		&updatedBy.ID,
		nil,
	)

	return toOrganizationResponse(organization), nil
}

func (s *OrganizationService) DeleteOrganization(organizationID uuid.UUID, deletedBy *users_models.User) error {
	if !deletedBy.CanManageOrganizations() {
		return apperrors.NewPermissionDenied("only administrators can delete organizations")
	}

	organization, err := s.organizationRepository.GetOrganizationByID(organizationID)
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}
	if organization == nil {
		return apperrors.NewNotFound("organization")
	}

	for _, listener := range s.deletionListeners {
		if err := listener.OnBeforeOrganizationDeletion(organizationID); err != nil {
			return err
		}
	}

	if err := s.organizationRepository.DeleteOrganization(organizationID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Organization deleted: %s", organization.Name),
		&deletedBy.ID,
		nil,
	)

	return nil
}

func toOrganizationResponse(
	organization *organizations_models.Organization,
) *organizations_dto.OrganizationResponseDTO {
	return &organizations_dto.OrganizationResponseDTO{
		ID:          organization.ID,
		Name:        organization.Name,
		Description: organization.Description,
		BudgetHours: organization.BudgetHours,
		CreatedAt:   organization.CreatedAt,
	}
}
