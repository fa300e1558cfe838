package timesheets_dto

import (
	"time"

	timeentries_dto "orilla/internal/features/timeentries/dto"
	timesheets_enums "orilla/internal/features/timesheets/enums"
	timesheets_permissions "orilla/internal/features/timesheets/permissions"

	"github.com/google/uuid"
)

type CreateTimeSheetRequestDTO struct {
	OrganizationID uuid.UUID  `json:"organizationId" binding:"required"`
	ProjectID      *uuid.UUID `json:"projectId"`
	AccountID      *uuid.UUID `json:"accountId"`
	Title          string     `json:"title"          binding:"required,min=1,max=255"`
	Description    string     `json:"description"    binding:"max=4096"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
}

type UpdateTimeSheetRequestDTO struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=4096"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type TimeSheetResponseDTO struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organizationId"`
	ProjectID      *uuid.UUID `json:"projectId,omitempty"`
	AccountID      *uuid.UUID `json:"accountId,omitempty"`

	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`

	Status          timesheets_enums.SheetStatus `json:"status"`
	StatusLabel     string                       `json:"statusLabel"`
	RejectionReason string                       `json:"rejectionReason,omitempty"`

	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListTimeSheetsRequestDTO struct {
	OrganizationID uuid.UUID  `form:"organizationId" binding:"required"`
	ProjectID      *uuid.UUID `form:"projectId"`
}

type ListTimeSheetsResponseDTO struct {
	TimeSheets []TimeSheetResponseDTO `json:"timeSheets"`
}

// TimeSheetWithEntriesResponseDTO is the full read model of one sheet:
// record, member entries and the recomputed hour total.
type TimeSheetWithEntriesResponseDTO struct {
	TimeSheet    TimeSheetResponseDTO                   `json:"timeSheet"`
	Entries      []timeentries_dto.TimeEntryResponseDTO `json:"entries"`
	TotalHours   float64                                `json:"totalHours"`
	CanApprove   CanApproveResponseDTO                  `json:"canApprove"`
	Organization *SheetScopeDTO                         `json:"organization,omitempty"`
	Project      *SheetScopeDTO                         `json:"project,omitempty"`
	Account      *SheetScopeDTO                         `json:"account,omitempty"`
}

// SheetScopeDTO names a referenced organization, project or account together
// with its budget for rollups.
type SheetScopeDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BudgetHours float64   `json:"budgetHours"`
}

type CanApproveResponseDTO struct {
	CanApprove bool   `json:"canApprove"`
	Reason     string `json:"reason,omitempty"`
}

type AddEntriesRequestDTO struct {
	EntryIDs []uuid.UUID `json:"entryIds" binding:"required,min=1"`
}

type RejectTimeSheetRequestDTO struct {
	Reason string `json:"reason" binding:"max=4096"`
}

type ReviewEntryRequestDTO struct {
	Message string `json:"message" binding:"max=8192"`
}

// TimeSheetSummaryResponseDTO is the read-side aggregation: per-status
// counts, hour sums and budget rollups. Recomputed from entry records on
// every call.
type TimeSheetSummaryResponseDTO struct {
	TotalEntries      int     `json:"totalEntries"`
	PendingEntries    int     `json:"pendingEntries"`
	ApprovedEntries   int     `json:"approvedEntries"`
	QuestionedEntries int     `json:"questionedEntries"`
	TotalHours        float64 `json:"totalHours"`
	ApprovedHours     float64 `json:"approvedHours"`
	BilledHours       float64 `json:"billedHours"`

	// Percentage of the scoping budget consumed by this sheet's total hours.
	// Omitted when the scope has no budget.
	ProjectBudgetUsedPercent      *float64 `json:"projectBudgetUsedPercent,omitempty"`
	AccountBudgetUsedPercent      *float64 `json:"accountBudgetUsedPercent,omitempty"`
	OrganizationBudgetUsedPercent *float64 `json:"organizationBudgetUsedPercent,omitempty"`
}

type EntryPermissionsResponseDTO = timesheets_permissions.EntryPermissions
