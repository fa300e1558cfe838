package timeentries_repositories

import (
	"errors"
	"fmt"
	"time"

	timeentries_enums "orilla/internal/features/timeentries/enums"
	timeentries_models "orilla/internal/features/timeentries/models"
	"orilla/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntryRepository struct{}

func (r *TimeEntryRepository) CreateEntry(entry *timeentries_models.TimeEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Status == "" {
		entry.Status = timeentries_enums.EntryStatusPending
	}

	return storage.GetDb().Create(entry).Error
}

func (r *TimeEntryRepository) GetEntryByID(entryID uuid.UUID) (*timeentries_models.TimeEntry, error) {
	var entry timeentries_models.TimeEntry

	if err := storage.GetDb().Where("id = ?", entryID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (r *TimeEntryRepository) GetEntriesByIDs(entryIDs []uuid.UUID) ([]*timeentries_models.TimeEntry, error) {
	if len(entryIDs) == 0 {
		return []*timeentries_models.TimeEntry{}, nil
	}

	var entries []*timeentries_models.TimeEntry

	err := storage.GetDb().
		Where("id IN ?", entryIDs).
		Find(&entries).Error

	return entries, err
}

func (r *TimeEntryRepository) GetEntriesBySheet(sheetID uuid.UUID) ([]*timeentries_models.TimeEntry, error) {
	var entries []*timeentries_models.TimeEntry

	err := storage.GetDb().
		Where("time_sheet_id = ?", sheetID).
		Order("date ASC, created_at ASC").
		Find(&entries).Error

	return entries, err
}

// GetAvailableEntries returns entries not yet assigned to any time sheet,
// optionally narrowed to a project.
func (r *TimeEntryRepository) GetAvailableEntries(
	organizationID uuid.UUID,
	projectID *uuid.UUID,
) ([]*timeentries_models.TimeEntry, error) {
	query := storage.GetDb().
		Where("organization_id = ? AND time_sheet_id IS NULL", organizationID)

	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var entries []*timeentries_models.TimeEntry

	err := query.Order("date ASC, created_at ASC").Find(&entries).Error

	return entries, err
}

func (r *TimeEntryRepository) GetEntriesByOrganization(
	organizationID uuid.UUID,
	createdBy *uuid.UUID,
) ([]*timeentries_models.TimeEntry, error) {
	query := storage.GetDb().Where("organization_id = ?", organizationID)

	if createdBy != nil {
		query = query.Where("created_by = ?", *createdBy)
	}

	var entries []*timeentries_models.TimeEntry

	err := query.Order("date DESC, created_at DESC").Find(&entries).Error

	return entries, err
}

func (r *TimeEntryRepository) UpdateEntry(entry *timeentries_models.TimeEntry) error {
	return storage.GetDb().Save(entry).Error
}

func (r *TimeEntryRepository) DeleteEntry(entryID uuid.UUID) error {
	return storage.GetDb().Delete(&timeentries_models.TimeEntry{}, entryID).Error
}

// UpdateStatusWithMessage flips the entry status from the expected current
// value and appends the decision message in one transaction. Returns false
// without writing anything when another reviewer changed the status first.
func (r *TimeEntryRepository) UpdateStatusWithMessage(
	entryID uuid.UUID,
	from timeentries_enums.EntryStatus,
	to timeentries_enums.EntryStatus,
	changedBy uuid.UUID,
	message *timeentries_models.EntryMessage,
) (bool, error) {
	applied := false

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.
			Model(&timeentries_models.TimeEntry{}).
			Where("id = ? AND status = ?", entryID, from).
			Updates(map[string]any{
				"status":            to,
				"status_changed_at": now,
				"status_changed_by": changedBy,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update entry status: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return nil
		}

		applied = true

		if message != nil {
			if message.ID == uuid.Nil {
				message.ID = uuid.New()
			}
			if message.CreatedAt.IsZero() {
				message.CreatedAt = now
			}

			if err := tx.Create(message).Error; err != nil {
				return fmt.Errorf("failed to create entry message: %w", err)
			}
		}

		return nil
	})

	return applied, err
}
