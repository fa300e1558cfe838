package accounts_services

import (
	"fmt"
	"time"

	"orilla/internal/apperrors"
	audit_logs "orilla/internal/features/audit_logs"
	accounts_dto "orilla/internal/features/accounts/dto"
	accounts_interfaces "orilla/internal/features/accounts/interfaces"
	accounts_models "orilla/internal/features/accounts/models"
	accounts_repositories "orilla/internal/features/accounts/repositories"
	organizations_services "orilla/internal/features/organizations/services"
	users_models "orilla/internal/features/users/models"

	"github.com/google/uuid"
)

type AccountService struct {
	accountRepository   *accounts_repositories.AccountRepository
	organizationService *organizations_services.OrganizationService
	auditLogService     *audit_logs.AuditLogService
	deletionListeners   []accounts_interfaces.AccountDeletionListener
}

func (s *AccountService) AddDeletionListener(
	listener accounts_interfaces.AccountDeletionListener,
) {
	s.deletionListeners = append(s.deletionListeners, listener)
}

func (s *AccountService) CreateAccount(
	request *accounts_dto.CreateAccountRequestDTO,
	creator *users_models.User,
) (*accounts_dto.AccountResponseDTO, error) {
	if !creator.CanManageOrganizations() {
		return nil, apperrors.NewPermissionDenied("only administrators can create accounts")
	}

	organization, err := s.organizationService.GetOrganizationRecord(request.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if organization == nil {
		return nil, apperrors.NewNotFound("organization")
	}

	existing, err := s.accountRepository.GetAccountByName(request.OrganizationID, request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidation("account with this name already exists in the organization")
	}

	account := &accounts_models.Account{
		ID:             uuid.New(),
		OrganizationID: request.OrganizationID,
		Name:           request.Name,
		Description:    request.Description,
		BudgetHours:    request.BudgetHours,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.accountRepository.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Account created: %s", account.Name),
		&creator.ID,
		nil,
	)

	return toAccountResponse(account), nil
}

func (s *AccountService) GetAccount(accountID uuid.UUID) (*accounts_dto.AccountResponseDTO, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, apperrors.NewNotFound("account")
	}

	return toAccountResponse(account), nil
}

func (s *AccountService) GetAccountRecord(accountID uuid.UUID) (*accounts_models.Account, error) {
	return s.accountRepository.GetAccountByID(accountID)
}

func (s *AccountService) ListAccounts(
	organizationID uuid.UUID,
) (*accounts_dto.ListAccountsResponseDTO, error) {
	accounts, err := s.accountRepository.GetAccountsByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	responses := make([]accounts_dto.AccountResponseDTO, len(accounts))
	for i, account := range accounts {
		responses[i] = *toAccountResponse(account)
	}

	return &accounts_dto.ListAccountsResponseDTO{Accounts: responses}, nil
}

func (s *AccountService) UpdateAccount(
	accountID uuid.UUID,
	request *accounts_dto.UpdateAccountRequestDTO,
	updatedBy *users_models.User,
) (*accounts_dto.AccountResponseDTO, error) {
	if !updatedBy.CanManageOrganizations() {
		return nil, apperrors.NewPermissionDenied("only administrators can update accounts")
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, apperrors.NewNotFound("account")
	}

	if request.Name != account.Name {
		existing, err := s.accountRepository.GetAccountByName(account.OrganizationID, request.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing account: %w", err)
		}
		if existing != nil {
			return nil, apperrors.NewValidation("account with this name already exists in the organization")
		}
	}

	account.Name = request.Name
	account.Description = request.Description
	account.BudgetHours = request.BudgetHours

	if err := s.accountRepository.UpdateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Account updated: %s", account.Name),
		&updatedBy.ID,
		nil,
	)

	return toAccountResponse(account), nil
}

func (s *AccountService) DeleteAccount(accountID uuid.UUID, deletedBy *users_models.User) error {
	if !deletedBy.CanManageOrganizations() {
		return apperrors.NewPermissionDenied("only administrators can delete accounts")
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return apperrors.NewNotFound("account")
	}

	for _, listener := range s.deletionListeners {
		if err := listener.OnBeforeAccountDeletion(accountID); err != nil {
			return err
		}
	}

	if err := s.accountRepository.DeleteAccount(accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Account deleted: %s", account.Name),
		&deletedBy.ID,
		nil,
	)

	return nil
}

func toAccountResponse(account *accounts_models.Account) *accounts_dto.AccountResponseDTO {
	return &accounts_dto.AccountResponseDTO{
		ID:             account.ID,
		OrganizationID: account.OrganizationID,
		Name:           account.Name,
		Description:    account.Description,
		BudgetHours:    account.BudgetHours,
		CreatedAt:      account.CreatedAt,
	}
}
