package timeentries_dto

import (
	"time"

	timeentries_enums "orilla/internal/features/timeentries/enums"

	"github.com/google/uuid"
)

type CreateTimeEntryRequestDTO struct {
	OrganizationID uuid.UUID  `json:"organizationId" binding:"required"`
	ProjectID      *uuid.UUID `json:"projectId"`
	Title          string     `json:"title"          binding:"required,min=1,max=255"`
	Description    string     `json:"description"    binding:"max=4096"`
	Date           time.Time  `json:"date"           binding:"required"`
	Hours          float64    `json:"hours"          binding:"required"`
	Billed         bool       `json:"billed"`
}

type UpdateTimeEntryRequestDTO struct {
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=4096"`
	Date        time.Time `json:"date"        binding:"required"`
	Hours       float64   `json:"hours"       binding:"required"`
	Billed      bool      `json:"billed"`
}

type TimeEntryResponseDTO struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organizationId"`
	ProjectID      *uuid.UUID `json:"projectId,omitempty"`
	TimeSheetID    *uuid.UUID `json:"timeSheetId,omitempty"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Billed      bool      `json:"billed"`

	Status          timeentries_enums.EntryStatus `json:"status"`
	StatusLabel     string                        `json:"statusLabel"`
	StatusChangedAt *time.Time                    `json:"statusChangedAt,omitempty"`
	StatusChangedBy *uuid.UUID                    `json:"statusChangedBy,omitempty"`

	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListTimeEntriesResponseDTO struct {
	Entries []TimeEntryResponseDTO `json:"entries"`
}

type GetAvailableEntriesRequestDTO struct {
	OrganizationID uuid.UUID  `form:"organizationId" binding:"required"`
	ProjectID      *uuid.UUID `form:"projectId"`
}

type CreateEntryMessageRequestDTO struct {
	Content string `json:"content" binding:"required,min=1,max=8192"`
}

type EntryMessageResponseDTO struct {
	ID           uuid.UUID                      `json:"id"`
	EntryID      uuid.UUID                      `json:"entryId"`
	AuthorID     uuid.UUID                      `json:"authorId"`
	AuthorEmail  string                         `json:"authorEmail"`
	Content      string                         `json:"content"`
	StatusChange *timeentries_enums.EntryStatus `json:"statusChange,omitempty"`
	CreatedAt    time.Time                      `json:"createdAt"`
}

type GetEntryMessagesResponseDTO struct {
	Messages []EntryMessageResponseDTO `json:"messages"`
}
