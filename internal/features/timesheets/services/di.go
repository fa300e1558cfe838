package timesheets_services

import (
	accounts_services "orilla/internal/features/accounts/services"
	audit_logs "orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
	projects_services "orilla/internal/features/projects/services"
	timeentries_repositories "orilla/internal/features/timeentries/repositories"
	timesheets_repositories "orilla/internal/features/timesheets/repositories"
)

var sheetRepository = &timesheets_repositories.TimeSheetRepository{}
var entryRepository = &timeentries_repositories.TimeEntryRepository{}
var messageRepository = &timeentries_repositories.EntryMessageRepository{}

var timeSheetService = &TimeSheetService{
	sheetRepository,
	entryRepository,
	organizations_services.GetOrganizationService(),
	projects_services.GetProjectService(),
	accounts_services.GetAccountService(),
	audit_logs.GetAuditLogService(),
}

var sheetWorkflowService = &SheetWorkflowService{
	sheetRepository,
	entryRepository,
	messageRepository,
	timeSheetService,
	projects_services.GetProjectService(),
	audit_logs.GetAuditLogService(),
}

func GetTimeSheetService() *TimeSheetService {
	return timeSheetService
}

func GetSheetWorkflowService() *SheetWorkflowService {
	return sheetWorkflowService
}
