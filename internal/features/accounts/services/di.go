package accounts_services

import (
	accounts_interfaces "orilla/internal/features/accounts/interfaces"
	accounts_repositories "orilla/internal/features/accounts/repositories"
	audit_logs "orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
)

var accountRepository = &accounts_repositories.AccountRepository{}

var accountService = &AccountService{
	accountRepository,
	organizations_services.GetOrganizationService(),
	audit_logs.GetAuditLogService(),
	[]accounts_interfaces.AccountDeletionListener{},
}

func GetAccountService() *AccountService {
	return accountService
}
