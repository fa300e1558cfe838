package timeentries_services

import (
	"fmt"
	"time"

	"orilla/internal/apperrors"
	audit_logs "orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
	projects_services "orilla/internal/features/projects/services"
	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_enums "orilla/internal/features/timeentries/enums"
	timeentries_models "orilla/internal/features/timeentries/models"
	timeentries_repositories "orilla/internal/features/timeentries/repositories"
	users_models "orilla/internal/features/users/models"

	"github.com/google/uuid"
)

type TimeEntryService struct {
	entryRepository     *timeentries_repositories.TimeEntryRepository
	organizationService *organizations_services.OrganizationService
	projectService      *projects_services.ProjectService
	auditLogService     *audit_logs.AuditLogService
}

func (s *TimeEntryService) CreateEntry(
	request *timeentries_dto.CreateTimeEntryRequestDTO,
	creator *users_models.User,
) (*timeentries_dto.TimeEntryResponseDTO, error) {
	if request.Hours <= 0 {
		return nil, apperrors.NewValidation("hours must be greater than zero")
	}

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

	entry := &timeentries_models.TimeEntry{
		ID:             uuid.New(),
		OrganizationID: request.OrganizationID,
		ProjectID:      request.ProjectID,
		Title:          request.Title,
		Description:    request.Description,
		Date:           request.Date,
		Hours:          request.Hours,
		Billed:         request.Billed,
		Status:         timeentries_enums.EntryStatusPending,
		CreatedBy:      creator.ID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.entryRepository.CreateEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time entry created: %s (%.2fh)", entry.Title, entry.Hours),
		&creator.ID,
		entry.ProjectID,
	)

	return ToTimeEntryResponse(entry), nil
}

func (s *TimeEntryService) GetEntry(
	entryID uuid.UUID,
	user *users_models.User,
) (*timeentries_dto.TimeEntryResponseDTO, error) {
	entry, err := s.getAccessibleEntry(entryID, user)
	if err != nil {
		return nil, err
	}

	return ToTimeEntryResponse(entry), nil
}

func (s *TimeEntryService) GetEntryRecord(entryID uuid.UUID) (*timeentries_models.TimeEntry, error) {
	return s.entryRepository.GetEntryByID(entryID)
}

// GetAvailableEntries lists entries not yet assigned to any time sheet.
func (s *TimeEntryService) GetAvailableEntries(
	request *timeentries_dto.GetAvailableEntriesRequestDTO,
	user *users_models.User,
) (*timeentries_dto.ListTimeEntriesResponseDTO, error) {
	if request.ProjectID != nil {
		canAccess, _, err := s.projectService.CanUserAccessProject(*request.ProjectID, user)
		if err != nil {
			return nil, err
		}
		if !canAccess {
			return nil, apperrors.NewPermissionDenied("not a project member")
		}
	}

	entries, err := s.entryRepository.GetAvailableEntries(request.OrganizationID, request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available entries: %w", err)
	}

	return toListResponse(entries), nil
}

// GetOrganizationEntries lists entries of one organization. Regular users
// only see their own entries; system admins see everything.
func (s *TimeEntryService) GetOrganizationEntries(
	organizationID uuid.UUID,
	user *users_models.User,
) (*timeentries_dto.ListTimeEntriesResponseDTO, error) {
	var createdBy *uuid.UUID
	if !user.IsSystemAdmin() {
		createdBy = &user.ID
	}

	entries, err := s.entryRepository.GetEntriesByOrganization(organizationID, createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization entries: %w", err)
	}

	return toListResponse(entries), nil
}

func (s *TimeEntryService) UpdateEntry(
	entryID uuid.UUID,
	request *timeentries_dto.UpdateTimeEntryRequestDTO,
	user *users_models.User,
) (*timeentries_dto.TimeEntryResponseDTO, error) {
	if request.Hours <= 0 {
		return nil, apperrors.NewValidation("hours must be greater than zero")
	}

	entry, err := s.getEditableEntry(entryID, user)
	if err != nil {
		return nil, err
	}

	if entry.IsOnSheet() {
		return nil, apperrors.NewValidation("entry belongs to a time sheet, remove it from the sheet first")
	}

	entry.Title = request.Title
	entry.Description = request.Description
	entry.Date = request.Date
	entry.Hours = request.Hours
	entry.Billed = request.Billed

	if err := s.entryRepository.UpdateEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time entry updated: %s", entry.Title),
		&user.ID,
		entry.ProjectID,
	)

	return ToTimeEntryResponse(entry), nil
}

func (s *TimeEntryService) DeleteEntry(entryID uuid.UUID, user *users_models.User) error {
	entry, err := s.getEditableEntry(entryID, user)
	if err != nil {
		return err
	}

	if entry.IsOnSheet() {
		return apperrors.NewValidation("entry belongs to a time sheet, remove it from the sheet first")
	}

	if entry.Billed {
		return apperrors.NewValidation("billed entries cannot be deleted")
	}

	if err := s.entryRepository.DeleteEntry(entryID); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time entry deleted: %s", entry.Title),
		&user.ID,
		entry.ProjectID,
	)

	return nil
}

// CanUserAccessEntry reports whether the user may read the entry and its
// discussion trail.
func (s *TimeEntryService) CanUserAccessEntry(
	entry *timeentries_models.TimeEntry,
	user *users_models.User,
) (bool, error) {
	if user.IsSystemAdmin() || entry.CreatedBy == user.ID {
		return true, nil
	}

	if entry.ProjectID == nil {
		return false, nil
	}

	canAccess, _, err := s.projectService.CanUserAccessProject(*entry.ProjectID, user)
	if err != nil {
		return false, err
	}

	return canAccess, nil
}

func (s *TimeEntryService) getAccessibleEntry(
	entryID uuid.UUID,
	user *users_models.User,
) (*timeentries_models.TimeEntry, error) {
	entry, err := s.entryRepository.GetEntryByID(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}
	if entry == nil {
		return nil, apperrors.NewNotFound("time entry")
	}

	canAccess, err := s.CanUserAccessEntry(entry, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, apperrors.NewPermissionDenied("not a project member")
	}

	return entry, nil
}

// getEditableEntry loads the entry and checks write access: the author, the
// project owner, or a system admin.
func (s *TimeEntryService) getEditableEntry(
	entryID uuid.UUID,
	user *users_models.User,
) (*timeentries_models.TimeEntry, error) {
	entry, err := s.entryRepository.GetEntryByID(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}
	if entry == nil {
		return nil, apperrors.NewNotFound("time entry")
	}

	if user.IsSystemAdmin() || entry.CreatedBy == user.ID {
		return entry, nil
	}

	if entry.ProjectID != nil {
		canManage, err := s.projectService.CanUserManageProject(*entry.ProjectID, user)
		if err != nil {
			return nil, err
		}
		if canManage {
			return entry, nil
		}
	}

	return nil, apperrors.NewPermissionDenied("insufficient permissions to modify this entry")
}

func ToTimeEntryResponse(entry *timeentries_models.TimeEntry) *timeentries_dto.TimeEntryResponseDTO {
	return &timeentries_dto.TimeEntryResponseDTO{
		ID:              entry.ID,
		OrganizationID:  entry.OrganizationID,
		ProjectID:       entry.ProjectID,
		TimeSheetID:     entry.TimeSheetID,
		Title:           entry.Title,
		Description:     entry.Description,
		Date:            entry.Date,
		Hours:           entry.Hours,
		Billed:          entry.Billed,
		Status:          entry.Status,
		StatusLabel:     entry.Status.Label(),
		StatusChangedAt: entry.StatusChangedAt,
		StatusChangedBy: entry.StatusChangedBy,
		CreatedBy:       entry.CreatedBy,
		CreatedAt:       entry.CreatedAt,
	}
}

func toListResponse(entries []*timeentries_models.TimeEntry) *timeentries_dto.ListTimeEntriesResponseDTO {
	responses := make([]timeentries_dto.TimeEntryResponseDTO, len(entries))
	for i, entry := range entries {
		responses[i] = *ToTimeEntryResponse(entry)
	}

	return &timeentries_dto.ListTimeEntriesResponseDTO{Entries: responses}
}
