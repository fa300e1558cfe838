package timesheets_services

import (
	"fmt"
	"time"

	"orilla/internal/apperrors"
	accounts_services "orilla/internal/features/accounts/services"
	audit_logs "orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
	projects_services "orilla/internal/features/projects/services"
	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_enums "orilla/internal/features/timeentries/enums"
	timeentries_repositories "orilla/internal/features/timeentries/repositories"
	timeentries_services "orilla/internal/features/timeentries/services"
	timesheets_dto "orilla/internal/features/timesheets/dto"
	timesheets_enums "orilla/internal/features/timesheets/enums"
	timesheets_models "orilla/internal/features/timesheets/models"
	timesheets_repositories "orilla/internal/features/timesheets/repositories"
	users_models "orilla/internal/features/users/models"

	"github.com/google/uuid"
)

type TimeSheetService struct {
	sheetRepository     *timesheets_repositories.TimeSheetRepository
	entryRepository     *timeentries_repositories.TimeEntryRepository
	organizationService *organizations_services.OrganizationService
	projectService      *projects_services.ProjectService
	accountService      *accounts_services.AccountService
	auditLogService     *audit_logs.AuditLogService
}

func (s *TimeSheetService) CreateSheet(
	request *timesheets_dto.CreateTimeSheetRequestDTO,
	creator *users_models.User,
) (*timesheets_dto.TimeSheetResponseDTO, error) {
	organization, err := s.organizationService.GetOrganizationRecord(request.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if organization == nil {
		return nil, apperrors.NewNotFound("organization")
	}

	if request.ProjectID != nil {
		project, err := s.projectService.GetProjectWithCache(*request.ProjectID)
		if err != nil {
			return nil, err
		}
		if project.OrganizationID != request.OrganizationID {
			return nil, apperrors.NewValidation("project belongs to a different organization")
		}

		canAccess, _, err := s.projectService.CanUserAccessProject(*request.ProjectID, creator)
		if err != nil {
			return nil, err
		}
		if !canAccess {
			return nil, apperrors.NewPermissionDenied("not a project member")
		}
	}

	if request.AccountID != nil {
		account, err := s.accountService.GetAccountRecord(*request.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account: %w", err)
		}
		if account == nil {
			return nil, apperrors.NewNotFound("account")
		}
		if account.OrganizationID != request.OrganizationID {
			return nil, apperrors.NewValidation("account belongs to a different organization")
		}
	}

	sheet := &timesheets_models.TimeSheet{
		ID:             uuid.New(),
		OrganizationID: request.OrganizationID,
		ProjectID:      request.ProjectID,
		AccountID:      request.AccountID,
		Title:          request.Title,
		Description:    request.Description,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		Status:         timesheets_enums.SheetStatusDraft,
		CreatedBy:      creator.ID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.sheetRepository.CreateSheet(sheet); err != nil {
		return nil, fmt.Errorf("failed to create time sheet: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time sheet created: %s", sheet.Title),
		&creator.ID,
		sheet.ProjectID,
	)

	return toSheetResponse(sheet), nil
}

func (s *TimeSheetService) ListSheets(
	request *timesheets_dto.ListTimeSheetsRequestDTO,
	user *users_models.User,
) (*timesheets_dto.ListTimeSheetsResponseDTO, error) {
	if request.ProjectID != nil {
		canAccess, _, err := s.projectService.CanUserAccessProject(*request.ProjectID, user)
		if err != nil {
			return nil, err
		}
		if !canAccess {
			return nil, apperrors.NewPermissionDenied("not a project member")
		}
	}

	sheets, err := s.sheetRepository.GetSheetsByOrganization(request.OrganizationID, request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time sheets: %w", err)
	}

	responses := make([]timesheets_dto.TimeSheetResponseDTO, len(sheets))
	for i, sheet := range sheets {
		responses[i] = *toSheetResponse(sheet)
	}

	return &timesheets_dto.ListTimeSheetsResponseDTO{TimeSheets: responses}, nil
}

// GetSheetWithEntries is the full read model: sheet record, member entries,
// recomputed total hours, the approval precondition and the scoping records
// with their budgets.
func (s *TimeSheetService) GetSheetWithEntries(
	sheetID uuid.UUID,
	user *users_models.User,
) (*timesheets_dto.TimeSheetWithEntriesResponseDTO, error) {
	sheet, err := s.getAccessibleSheet(sheetID, user)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepository.GetEntriesBySheet(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet entries: %w", err)
	}

	totalHours := 0.0
	entryResponses := make([]timeentries_dto.TimeEntryResponseDTO, len(entries))
	for i, entry := range entries {
		totalHours += entry.Hours
		entryResponses[i] = *timeentries_services.ToTimeEntryResponse(entry)
	}

	canApprove, err := s.CanApproveSheet(sheetID)
	if err != nil {
		return nil, err
	}

	response := &timesheets_dto.TimeSheetWithEntriesResponseDTO{
		TimeSheet:  *toSheetResponse(sheet),
		Entries:    entryResponses,
		TotalHours: totalHours,
		CanApprove: *canApprove,
	}

	if err := s.attachScopes(sheet, response); err != nil {
		return nil, err
	}

	return response, nil
}

// Blocking reasons returned by CanApproveSheet. Stable strings the UI
// matches on; questioned entries outrank pending ones.
const (
	ReasonEntriesPending    = "entries pending"
	ReasonEntriesQuestioned = "entries questioned"
)

// CanApproveSheet is the structural approval precondition: true only when
// every member entry is approved. An empty sheet reads as pending.
func (s *TimeSheetService) CanApproveSheet(sheetID uuid.UUID) (*timesheets_dto.CanApproveResponseDTO, error) {
	counts, err := s.sheetRepository.GetReviewCounts(sheetID)
	if err != nil {
		return nil, err
	}

	if counts.QuestionedEntries > 0 {
		return &timesheets_dto.CanApproveResponseDTO{CanApprove: false, Reason: ReasonEntriesQuestioned}, nil
	}

	if counts.PendingEntries > 0 || counts.TotalEntries == 0 {
		return &timesheets_dto.CanApproveResponseDTO{CanApprove: false, Reason: ReasonEntriesPending}, nil
	}

	return &timesheets_dto.CanApproveResponseDTO{CanApprove: true}, nil
}

// GetSheetSummary recomputes the per-status counts, hour sums and budget
// rollups from the entry records.
func (s *TimeSheetService) GetSheetSummary(
	sheetID uuid.UUID,
	user *users_models.User,
) (*timesheets_dto.TimeSheetSummaryResponseDTO, error) {
	sheet, err := s.getAccessibleSheet(sheetID, user)
	if err != nil {
		return nil, err
	}

	counts, err := s.sheetRepository.GetReviewCounts(sheetID)
	if err != nil {
		return nil, err
	}

	summary := &timesheets_dto.TimeSheetSummaryResponseDTO{
		TotalEntries:      counts.TotalEntries,
		PendingEntries:    counts.PendingEntries,
		ApprovedEntries:   counts.ApprovedEntries,
		QuestionedEntries: counts.QuestionedEntries,
		TotalHours:        counts.TotalHours,
		ApprovedHours:     counts.ApprovedHours,
		BilledHours:       counts.BilledHours,
	}

	if sheet.ProjectID != nil {
		project, err := s.projectService.GetProjectWithCache(*sheet.ProjectID)
		if err == nil {
			summary.ProjectBudgetUsedPercent = budgetPercent(counts.TotalHours, project.BudgetHours)
		}
	}

	if sheet.AccountID != nil {
		account, err := s.accountService.GetAccountRecord(*sheet.AccountID)
		if err == nil && account != nil {
			summary.AccountBudgetUsedPercent = budgetPercent(counts.TotalHours, account.BudgetHours)
		}
	}

	organization, err := s.organizationService.GetOrganizationRecord(sheet.OrganizationID)
	if err == nil && organization != nil {
		summary.OrganizationBudgetUsedPercent = budgetPercent(counts.TotalHours, organization.BudgetHours)
	}

	return summary, nil
}

func (s *TimeSheetService) UpdateSheet(
	sheetID uuid.UUID,
	request *timesheets_dto.UpdateTimeSheetRequestDTO,
	user *users_models.User,
) (*timesheets_dto.TimeSheetResponseDTO, error) {
	sheet, err := s.getEditableSheet(sheetID, user)
	if err != nil {
		return nil, err
	}

	if sheet.Status != timesheets_enums.SheetStatusDraft {
		return nil, apperrors.NewValidation("time sheet can only be edited while draft")
	}

	sheet.Title = request.Title
	sheet.Description = request.Description
	sheet.StartDate = request.StartDate
	sheet.EndDate = request.EndDate

	if err := s.sheetRepository.UpdateSheet(sheet); err != nil {
		return nil, fmt.Errorf("failed to update time sheet: %w", err)
	}

	return toSheetResponse(sheet), nil
}

func (s *TimeSheetService) DeleteSheet(sheetID uuid.UUID, user *users_models.User) error {
	sheet, err := s.getEditableSheet(sheetID, user)
	if err != nil {
		return err
	}

	if sheet.Status != timesheets_enums.SheetStatusDraft {
		return apperrors.NewValidation("time sheet can only be deleted while draft")
	}

	if err := s.sheetRepository.DeleteSheet(sheetID); err != nil {
		return fmt.Errorf("failed to delete time sheet: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time sheet deleted: %s", sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

// AddEntries attaches unassigned entries to a draft sheet.
func (s *TimeSheetService) AddEntries(
	sheetID uuid.UUID,
	request *timesheets_dto.AddEntriesRequestDTO,
	user *users_models.User,
) error {
	sheet, err := s.getEditableSheet(sheetID, user)
	if err != nil {
		return err
	}

	if sheet.Status != timesheets_enums.SheetStatusDraft {
		return apperrors.NewValidation("entries can only be added while the sheet is draft")
	}

	entries, err := s.entryRepository.GetEntriesByIDs(request.EntryIDs)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	if len(entries) != len(request.EntryIDs) {
		return apperrors.NewNotFound("time entry")
	}

	for _, entry := range entries {
		if entry.OrganizationID != sheet.OrganizationID {
			return apperrors.NewValidation("entry belongs to a different organization")
		}

		if sheet.ProjectID != nil {
			if entry.ProjectID == nil || *entry.ProjectID != *sheet.ProjectID {
				return apperrors.NewValidation("entry belongs to a different project")
			}
		}
	}

	claimed, err := s.sheetRepository.AddEntries(sheetID, request.EntryIDs)
	if err != nil {
		return fmt.Errorf("failed to add entries to sheet: %w", err)
	}
	if !claimed {
		return apperrors.NewConflict("one or more entries were assigned to another sheet")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Added %d entries to time sheet: %s", len(request.EntryIDs), sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

// RemoveEntry detaches an entry from a draft sheet. Approved entries are
// never removable: entries already approved in a prior review pass survive
// sheet edits.
func (s *TimeSheetService) RemoveEntry(
	sheetID uuid.UUID,
	entryID uuid.UUID,
	user *users_models.User,
) error {
	sheet, err := s.getEditableSheet(sheetID, user)
	if err != nil {
		return err
	}

	if sheet.Status != timesheets_enums.SheetStatusDraft {
		return apperrors.NewValidation("entries can only be removed while the sheet is draft")
	}

	entry, err := s.entryRepository.GetEntryByID(entryID)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}
	if entry == nil || entry.TimeSheetID == nil || *entry.TimeSheetID != sheetID {
		return apperrors.NewNotFound("time entry on this sheet")
	}

	if entry.Status == timeentries_enums.EntryStatusApproved {
		return apperrors.NewValidation("approved entries cannot be removed from a sheet")
	}

	removed, err := s.sheetRepository.RemoveEntry(sheetID, entryID)
	if err != nil {
		return fmt.Errorf("failed to remove entry from sheet: %w", err)
	}
	if !removed {
		return apperrors.NewConflict("entry was modified concurrently")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Entry removed from time sheet: %s", sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

func (s *TimeSheetService) GetSheetRecord(sheetID uuid.UUID) (*timesheets_models.TimeSheet, error) {
	return s.sheetRepository.GetSheetByID(sheetID)
}

func (s *TimeSheetService) getAccessibleSheet(
	sheetID uuid.UUID,
	user *users_models.User,
) (*timesheets_models.TimeSheet, error) {
	sheet, err := s.sheetRepository.GetSheetByID(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time sheet: %w", err)
	}
	if sheet == nil {
		return nil, apperrors.NewNotFound("time sheet")
	}

	if user.IsSystemAdmin() || sheet.CreatedBy == user.ID {
		return sheet, nil
	}

	if sheet.ProjectID != nil {
		canAccess, _, err := s.projectService.CanUserAccessProject(*sheet.ProjectID, user)
		if err != nil {
			return nil, err
		}
		if canAccess {
			return sheet, nil
		}
	}

	return nil, apperrors.NewPermissionDenied("not a project member")
}

// getEditableSheet loads the sheet and checks write access: the creator, a
// system admin, or the project owner.
func (s *TimeSheetService) getEditableSheet(
	sheetID uuid.UUID,
	user *users_models.User,
) (*timesheets_models.TimeSheet, error) {
	sheet, err := s.sheetRepository.GetSheetByID(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time sheet: %w", err)
	}
	if sheet == nil {
		return nil, apperrors.NewNotFound("time sheet")
	}

	if user.IsSystemAdmin() || sheet.CreatedBy == user.ID {
		return sheet, nil
	}

	if sheet.ProjectID != nil {
		canManage, err := s.projectService.CanUserManageProject(*sheet.ProjectID, user)
		if err != nil {
			return nil, err
		}
		if canManage {
			return sheet, nil
		}
	}

	return nil, apperrors.NewPermissionDenied("insufficient permissions to modify this sheet")
}

func (s *TimeSheetService) attachScopes(
	sheet *timesheets_models.TimeSheet,
	response *timesheets_dto.TimeSheetWithEntriesResponseDTO,
) error {
	organization, err := s.organizationService.GetOrganizationRecord(sheet.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}
	if organization != nil {
		response.Organization = &timesheets_dto.SheetScopeDTO{
			ID:          organization.ID,
			Name:        organization.Name,
			BudgetHours: organization.BudgetHours,
		}
	}

	if sheet.ProjectID != nil {
		project, err := s.projectService.GetProjectWithCache(*sheet.ProjectID)
		if err == nil {
			response.Project = &timesheets_dto.SheetScopeDTO{
				ID:          project.ID,
				Name:        project.Name,
				BudgetHours: project.BudgetHours,
			}
		}
	}

	if sheet.AccountID != nil {
		account, err := s.accountService.GetAccountRecord(*sheet.AccountID)
		if err == nil && account != nil {
			response.Account = &timesheets_dto.SheetScopeDTO{
				ID:          account.ID,
				Name:        account.Name,
				BudgetHours: account.BudgetHours,
			}
		}
	}

	return nil
}

func budgetPercent(totalHours, budgetHours float64) *float64 {
	if budgetHours <= 0 {
		return nil
	}

	percent := totalHours / budgetHours * 100

	return &percent
}

func toSheetResponse(sheet *timesheets_models.TimeSheet) *timesheets_dto.TimeSheetResponseDTO {
	return &timesheets_dto.TimeSheetResponseDTO{
		ID:              sheet.ID,
		OrganizationID:  sheet.OrganizationID,
		ProjectID:       sheet.ProjectID,
		AccountID:       sheet.AccountID,
		Title:           sheet.Title,
		Description:     sheet.Description,
		StartDate:       sheet.StartDate,
		EndDate:         sheet.EndDate,
		Status:          sheet.Status,
		StatusLabel:     sheet.Status.Label(),
		RejectionReason: sheet.RejectionReason,
		CreatedBy:       sheet.CreatedBy,
		CreatedAt:       sheet.CreatedAt,
		UpdatedAt:       sheet.UpdatedAt,
	}
}
