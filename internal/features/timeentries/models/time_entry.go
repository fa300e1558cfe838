package timeentries_models

import (
	"time"

	timeentries_enums "orilla/internal/features/timeentries/enums"

	"github.com/google/uuid"
)

// TimeEntry is a single unit of recorded work. It joins a time sheet by
// reference: TimeSheetID is nil while the entry is unassigned.
type TimeEntry struct {
	ID             uuid.UUID  `json:"id"             gorm:"column:id"`
	OrganizationID uuid.UUID  `json:"organizationId" gorm:"column:organization_id"`
	ProjectID      *uuid.UUID `json:"projectId"      gorm:"column:project_id"`
	TimeSheetID    *uuid.UUID `json:"timeSheetId"    gorm:"column:time_sheet_id"`

	Title       string    `json:"title"       gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	Date        time.Time `json:"date"        gorm:"column:date"`
	Hours       float64   `json:"hours"       gorm:"column:hours"`
	Billed      bool      `json:"billed"      gorm:"column:billed"`

	Status          timeentries_enums.EntryStatus `json:"status"          gorm:"column:status"`
	StatusChangedAt *time.Time                    `json:"statusChangedAt" gorm:"column:status_changed_at"`
	StatusChangedBy *uuid.UUID                    `json:"statusChangedBy" gorm:"column:status_changed_by"`

	CreatedBy uuid.UUID `json:"createdBy" gorm:"column:created_by"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) IsOnSheet() bool {
	return e.TimeSheetID != nil
}
