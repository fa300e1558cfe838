package timesheets_services

import (
	"fmt"

	"orilla/internal/apperrors"
	audit_logs "orilla/internal/features/audit_logs"
	projects_services "orilla/internal/features/projects/services"
	timeentries_enums "orilla/internal/features/timeentries/enums"
	timeentries_models "orilla/internal/features/timeentries/models"
	timeentries_repositories "orilla/internal/features/timeentries/repositories"
	timesheets_dto "orilla/internal/features/timesheets/dto"
	timesheets_enums "orilla/internal/features/timesheets/enums"
	timesheets_models "orilla/internal/features/timesheets/models"
	timesheets_permissions "orilla/internal/features/timesheets/permissions"
	timesheets_repositories "orilla/internal/features/timesheets/repositories"
	users_enums "orilla/internal/features/users/enums"
	users_models "orilla/internal/features/users/models"

	"github.com/google/uuid"
)

// SheetWorkflowService applies the sheet lifecycle transitions and the
// per-entry review sub-machine. Every transition is permission-checked
// against the role table and applied as a conditional update so concurrent
// reviewers surface as conflicts instead of silent overwrites.
type SheetWorkflowService struct {
	sheetRepository   *timesheets_repositories.TimeSheetRepository
	entryRepository   *timeentries_repositories.TimeEntryRepository
	messageRepository *timeentries_repositories.EntryMessageRepository
	sheetService      *TimeSheetService
	projectService    *projects_services.ProjectService
	auditLogService   *audit_logs.AuditLogService
}

// SubmitSheet moves a non-empty draft sheet to submitted, freezing entry
// membership and opening per-entry review.
func (s *SheetWorkflowService) SubmitSheet(sheetID uuid.UUID, user *users_models.User) error {
	sheet, err := s.sheetService.getEditableSheet(sheetID, user)
	if err != nil {
		return err
	}

	if !sheet.Status.CanTransitionTo(timesheets_enums.SheetStatusSubmitted) {
		return apperrors.NewInvalidStateTransition(
			string(sheet.Status),
			string(timesheets_enums.SheetStatusSubmitted),
			"only draft sheets can be submitted",
		)
	}

	counts, err := s.sheetRepository.GetReviewCounts(sheetID)
	if err != nil {
		return err
	}
	if counts.TotalEntries == 0 {
		return apperrors.NewValidation("cannot submit an empty time sheet")
	}

	applied, err := s.sheetRepository.UpdateStatusIf(
		sheetID,
		timesheets_enums.SheetStatusDraft,
		timesheets_enums.SheetStatusSubmitted,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to submit time sheet: %w", err)
	}
	if !applied {
		return apperrors.NewConflict("time sheet was modified concurrently")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time sheet submitted: %s", sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

// ApproveSheet closes a submitted sheet. Requires the approve-sheet
// capability and the structural precondition that every entry is approved.
func (s *SheetWorkflowService) ApproveSheet(sheetID uuid.UUID, user *users_models.User) error {
	sheet, actor, context, err := s.resolveSheetActor(sheetID, user)
	if err != nil {
		return err
	}

	decision := timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityApproveSheet)
	if !decision.Allowed {
		return apperrors.NewPermissionDenied(decision.Reason)
	}

	if !sheet.Status.CanTransitionTo(timesheets_enums.SheetStatusApproved) {
		return apperrors.NewInvalidStateTransition(
			string(sheet.Status),
			string(timesheets_enums.SheetStatusApproved),
			"only submitted sheets can be approved",
		)
	}

	canApprove, err := s.sheetService.CanApproveSheet(sheetID)
	if err != nil {
		return err
	}
	if !canApprove.CanApprove {
		return apperrors.NewInvalidStateTransition(
			string(sheet.Status),
			string(timesheets_enums.SheetStatusApproved),
			canApprove.Reason,
		)
	}

	applied, err := s.sheetRepository.UpdateStatusIf(
		sheetID,
		timesheets_enums.SheetStatusSubmitted,
		timesheets_enums.SheetStatusApproved,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to approve time sheet: %w", err)
	}
	if !applied {
		return apperrors.NewConflict("time sheet was modified concurrently")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time sheet approved: %s", sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

// RejectSheet closes a submitted sheet with a reason.
func (s *SheetWorkflowService) RejectSheet(
	sheetID uuid.UUID,
	request *timesheets_dto.RejectTimeSheetRequestDTO,
	user *users_models.User,
) error {
	sheet, actor, context, err := s.resolveSheetActor(sheetID, user)
	if err != nil {
		return err
	}

	decision := timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityRejectSheet)
	if !decision.Allowed {
		return apperrors.NewPermissionDenied(decision.Reason)
	}

	if !sheet.Status.CanTransitionTo(timesheets_enums.SheetStatusRejected) {
		return apperrors.NewInvalidStateTransition(
			string(sheet.Status),
			string(timesheets_enums.SheetStatusRejected),
			"only submitted sheets can be rejected",
		)
	}

	applied, err := s.sheetRepository.UpdateStatusIf(
		sheetID,
		timesheets_enums.SheetStatusSubmitted,
		timesheets_enums.SheetStatusRejected,
		map[string]any{"rejection_reason": request.Reason},
	)
	if err != nil {
		return fmt.Errorf("failed to reject time sheet: %w", err)
	}
	if !applied {
		return apperrors.NewConflict("time sheet was modified concurrently")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time sheet rejected: %s", sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

// RevertToDraft returns a submitted, approved or rejected sheet to draft,
// resetting every member entry to pending with its review marks cleared.
// Reverting past client or reviewer interaction, or out of the approved
// state, requires the override capability.
func (s *SheetWorkflowService) RevertToDraft(sheetID uuid.UUID, user *users_models.User) error {
	sheet, actor, context, err := s.resolveSheetActor(sheetID, user)
	if err != nil {
		return err
	}

	if !sheet.Status.CanTransitionTo(timesheets_enums.SheetStatusDraft) {
		return apperrors.NewInvalidStateTransition(
			string(sheet.Status),
			string(timesheets_enums.SheetStatusDraft),
			"sheet is already draft",
		)
	}

	hasInteraction, err := s.hasClientInteraction(sheet)
	if err != nil {
		return err
	}
	context.HasClientInteraction = hasInteraction

	decision := timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityRevertSheet)
	if !decision.Allowed {
		return apperrors.NewPermissionDenied(decision.Reason)
	}

	if sheet.Status == timesheets_enums.SheetStatusApproved {
		override := timesheets_permissions.Evaluate(
			actor, context, timesheets_permissions.CapabilityOverrideRevert)
		if !override.Allowed {
			return apperrors.NewPermissionDenied("reverting an approved sheet requires the owner role")
		}
	}

	reverted, err := s.sheetRepository.RevertToDraft(sheetID, sheet.Status)
	if err != nil {
		return fmt.Errorf("failed to revert time sheet: %w", err)
	}
	if !reverted {
		return apperrors.NewConflict("time sheet was modified concurrently")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Time sheet reverted to draft: %s", sheet.Title),
		&user.ID,
		sheet.ProjectID,
	)

	return nil
}

// ApproveEntry marks a pending entry approved. Only valid while the parent
// sheet is submitted.
func (s *SheetWorkflowService) ApproveEntry(
	entryID uuid.UUID,
	request *timesheets_dto.ReviewEntryRequestDTO,
	user *users_models.User,
) error {
	entry, actor, context, err := s.resolveEntryActor(entryID, user)
	if err != nil {
		return err
	}

	decision := timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityApproveEntry)
	if !decision.Allowed {
		return apperrors.NewPermissionDenied(decision.Reason)
	}

	if entry.Status != timeentries_enums.EntryStatusPending {
		return apperrors.NewConflict("entry is not pending")
	}

	return s.applyEntryTransition(
		entry,
		timeentries_enums.EntryStatusPending,
		timeentries_enums.EntryStatusApproved,
		request.Message,
		user,
	)
}

// QuestionEntry flags a pending or approved entry for clarification,
// optionally with a message explaining the question.
func (s *SheetWorkflowService) QuestionEntry(
	entryID uuid.UUID,
	request *timesheets_dto.ReviewEntryRequestDTO,
	user *users_models.User,
) error {
	entry, actor, context, err := s.resolveEntryActor(entryID, user)
	if err != nil {
		return err
	}

	decision := timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityQuestionEntry)
	if !decision.Allowed {
		return apperrors.NewPermissionDenied(decision.Reason)
	}

	if entry.Status == timeentries_enums.EntryStatusQuestioned {
		return apperrors.NewConflict("entry is already questioned")
	}

	return s.applyEntryTransition(
		entry,
		entry.Status,
		timeentries_enums.EntryStatusQuestioned,
		request.Message,
		user,
	)
}

// ResolveQuestion clears a questioned entry back to pending so it can be
// re-reviewed, optionally appending a resolution message.
func (s *SheetWorkflowService) ResolveQuestion(
	entryID uuid.UUID,
	request *timesheets_dto.ReviewEntryRequestDTO,
	user *users_models.User,
) error {
	entry, actor, context, err := s.resolveEntryActor(entryID, user)
	if err != nil {
		return err
	}

	decision := timesheets_permissions.Evaluate(actor, context, timesheets_permissions.CapabilityQuestionEntry)
	if !decision.Allowed {
		return apperrors.NewPermissionDenied(decision.Reason)
	}

	if entry.Status != timeentries_enums.EntryStatusQuestioned {
		return apperrors.NewConflict("entry is not questioned")
	}

	return s.applyEntryTransition(
		entry,
		timeentries_enums.EntryStatusQuestioned,
		timeentries_enums.EntryStatusPending,
		request.Message,
		user,
	)
}

// GetEntryPermissions computes the capability set the UI uses to show or
// hide review controls for one entry.
func (s *SheetWorkflowService) GetEntryPermissions(
	entryID uuid.UUID,
	user *users_models.User,
) (*timesheets_permissions.EntryPermissions, error) {
	entry, err := s.entryRepository.GetEntryByID(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	if entry == nil {
		return nil, apperrors.NewNotFound("time entry")
	}

	actor, context, err := s.resolveActor(entry.ProjectID, user)
	if err != nil {
		return nil, err
	}

	permissions := timesheets_permissions.EvaluateEntryPermissions(actor, context, entry.CreatedBy)

	return &permissions, nil
}

// applyEntryTransition performs the conditional status update and, when a
// message is supplied, appends it atomically with a matching status-change
// tag.
func (s *SheetWorkflowService) applyEntryTransition(
	entry *timeentries_models.TimeEntry,
	from timeentries_enums.EntryStatus,
	to timeentries_enums.EntryStatus,
	messageContent string,
	user *users_models.User,
) error {
	var message *timeentries_models.EntryMessage
	if messageContent != "" {
		statusChange := to
		message = &timeentries_models.EntryMessage{
			EntryID:      entry.ID,
			AuthorID:     user.ID,
			Content:      messageContent,
			StatusChange: &statusChange,
		}
	}

	applied, err := s.entryRepository.UpdateStatusWithMessage(entry.ID, from, to, user.ID, message)
	if err != nil {
		return fmt.Errorf("failed to update entry status: %w", err)
	}
	if !applied {
		return apperrors.NewConflict("entry status was changed by another reviewer")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Entry %s: %s", to.Label(), entry.Title),
		&user.ID,
		entry.ProjectID,
	)

	return nil
}

// resolveSheetActor loads the sheet and builds the permission evaluator
// inputs for it.
func (s *SheetWorkflowService) resolveSheetActor(
	sheetID uuid.UUID,
	user *users_models.User,
) (*timesheets_models.TimeSheet, timesheets_permissions.Actor, timesheets_permissions.ReviewContext, error) {
	var actor timesheets_permissions.Actor
	var context timesheets_permissions.ReviewContext

	sheet, err := s.sheetRepository.GetSheetByID(sheetID)
	if err != nil {
		return nil, actor, context, fmt.Errorf("failed to get time sheet: %w", err)
	}
	if sheet == nil {
		return nil, actor, context, apperrors.NewNotFound("time sheet")
	}

	actor, context, err = s.resolveActor(sheet.ProjectID, user)
	if err != nil {
		return nil, actor, context, err
	}

	return sheet, actor, context, nil
}

// resolveEntryActor loads the entry, checks its parent sheet is under
// review, and builds the permission evaluator inputs.
func (s *SheetWorkflowService) resolveEntryActor(
	entryID uuid.UUID,
	user *users_models.User,
) (*timeentries_models.TimeEntry, timesheets_permissions.Actor, timesheets_permissions.ReviewContext, error) {
	var actor timesheets_permissions.Actor
	var context timesheets_permissions.ReviewContext

	entry, err := s.entryRepository.GetEntryByID(entryID)
	if err != nil {
		return nil, actor, context, fmt.Errorf("failed to get entry: %w", err)
	}
	if entry == nil {
		return nil, actor, context, apperrors.NewNotFound("time entry")
	}

	if entry.TimeSheetID == nil {
		return nil, actor, context, apperrors.NewValidation("entry is not part of a time sheet")
	}

	sheet, err := s.sheetRepository.GetSheetByID(*entry.TimeSheetID)
	if err != nil {
		return nil, actor, context, fmt.Errorf("failed to get time sheet: %w", err)
	}
	if sheet == nil {
		return nil, actor, context, apperrors.NewNotFound("time sheet")
	}

	if sheet.Status != timesheets_enums.SheetStatusSubmitted {
		return nil, actor, context, apperrors.NewInvalidStateTransition(
			string(sheet.Status),
			string(sheet.Status),
			"entries can only be reviewed while the sheet is submitted",
		)
	}

	actor, context, err = s.resolveActor(entry.ProjectID, user)
	if err != nil {
		return nil, actor, context, err
	}

	return entry, actor, context, nil
}

func (s *SheetWorkflowService) resolveActor(
	projectID *uuid.UUID,
	user *users_models.User,
) (timesheets_permissions.Actor, timesheets_permissions.ReviewContext, error) {
	// The auth middleware guarantees a user on HTTP paths; direct callers
	// without one are denied rather than dereferenced.
	if user == nil {
		return timesheets_permissions.Actor{}, timesheets_permissions.ReviewContext{},
			apperrors.NewPermissionDenied("Not authenticated")
	}

	actor := timesheets_permissions.Actor{
		UserID:        user.ID,
		IsSystemAdmin: user.IsSystemAdmin(),
	}
	context := timesheets_permissions.ReviewContext{
		HasProject: projectID != nil,
	}

	if projectID != nil {
		role, err := s.projectService.GetUserProjectRole(*projectID, user.ID)
		if err != nil {
			return actor, context, fmt.Errorf("failed to get project role: %w", err)
		}
		actor.ProjectRole = role
	}

	return actor, context, nil
}

// hasClientInteraction reports whether any entry status was changed by, or
// any entry message was authored by, a user holding the client, reviewer or
// owner role on the sheet's project.
func (s *SheetWorkflowService) hasClientInteraction(sheet *timesheets_models.TimeSheet) (bool, error) {
	if sheet.ProjectID == nil {
		return false, nil
	}

	entries, err := s.entryRepository.GetEntriesBySheet(sheet.ID)
	if err != nil {
		return false, fmt.Errorf("failed to get sheet entries: %w", err)
	}
	if len(entries) == 0 {
		return false, nil
	}

	userIDs := make(map[uuid.UUID]struct{})
	entryIDs := make([]uuid.UUID, len(entries))
	for i, entry := range entries {
		entryIDs[i] = entry.ID
		if entry.StatusChangedBy != nil {
			userIDs[*entry.StatusChangedBy] = struct{}{}
		}
	}

	messages, err := s.messageRepository.GetMessagesByEntries(entryIDs)
	if err != nil {
		return false, fmt.Errorf("failed to get entry messages: %w", err)
	}
	for _, message := range messages {
		userIDs[message.AuthorID] = struct{}{}
	}

	if len(userIDs) == 0 {
		return false, nil
	}

	ids := make([]uuid.UUID, 0, len(userIDs))
	for id := range userIDs {
		ids = append(ids, id)
	}

	roles, err := s.projectService.GetProjectRolesForUsers(*sheet.ProjectID, ids)
	if err != nil {
		return false, fmt.Errorf("failed to get project roles: %w", err)
	}

	for _, role := range roles {
		switch role {
		case users_enums.ProjectRoleClient, users_enums.ProjectRoleReviewer, users_enums.ProjectRoleOwner:
			return true, nil
		}
	}

	return false, nil
}
