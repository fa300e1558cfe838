package timesheets_models

import (
	"time"

	timesheets_enums "orilla/internal/features/timesheets/enums"

	"github.com/google/uuid"
)

// TimeSheet aggregates time entries for one review pass. Entries join by
// reference and survive the sheet: deleting a draft sheet only disassociates
// them.
type TimeSheet struct {
	ID             uuid.UUID  `json:"id"             gorm:"column:id"`
	OrganizationID uuid.UUID  `json:"organizationId" gorm:"column:organization_id"`
	ProjectID      *uuid.UUID `json:"projectId"      gorm:"column:project_id"`
	AccountID      *uuid.UUID `json:"accountId"      gorm:"column:account_id"`

	Title       string     `json:"title"       gorm:"column:title"`
	Description string     `json:"description" gorm:"column:description"`
	StartDate   *time.Time `json:"startDate"   gorm:"column:start_date"`
	EndDate     *time.Time `json:"endDate"     gorm:"column:end_date"`

	Status          timesheets_enums.SheetStatus `json:"status"          gorm:"column:status"`
	RejectionReason string                       `json:"rejectionReason" gorm:"column:rejection_reason"`

	CreatedBy uuid.UUID `json:"createdBy" gorm:"column:created_by"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (TimeSheet) TableName() string {
	return "time_sheets"
}
