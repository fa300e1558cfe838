package timeentries_services

import (
	audit_logs "orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
	projects_services "orilla/internal/features/projects/services"
	timeentries_repositories "orilla/internal/features/timeentries/repositories"
)

var entryRepository = &timeentries_repositories.TimeEntryRepository{}
var messageRepository = &timeentries_repositories.EntryMessageRepository{}

var timeEntryService = &TimeEntryService{
	entryRepository,
	organizations_services.GetOrganizationService(),
	projects_services.GetProjectService(),
	audit_logs.GetAuditLogService(),
}

var entryMessageService = &EntryMessageService{
	messageRepository,
	timeEntryService,
}

func GetTimeEntryService() *TimeEntryService {
	return timeEntryService
}

func GetEntryMessageService() *EntryMessageService {
	return entryMessageService
}
