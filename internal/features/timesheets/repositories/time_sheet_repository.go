package timesheets_repositories

import (
	"errors"
	"fmt"
	"time"

	timeentries_enums "orilla/internal/features/timeentries/enums"
	timeentries_models "orilla/internal/features/timeentries/models"
	timesheets_enums "orilla/internal/features/timesheets/enums"
	timesheets_models "orilla/internal/features/timesheets/models"
	"orilla/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSheetRepository struct{}

// ReviewCounts is the per-status rollup of a sheet's member entries,
// recomputed from entry records on every call.
type ReviewCounts struct {
	TotalEntries      int     `gorm:"column:total_entries"`
	PendingEntries    int     `gorm:"column:pending_entries"`
	ApprovedEntries   int     `gorm:"column:approved_entries"`
	QuestionedEntries int     `gorm:"column:questioned_entries"`
	TotalHours        float64 `gorm:"column:total_hours"`
	ApprovedHours     float64 `gorm:"column:approved_hours"`
	BilledHours       float64 `gorm:"column:billed_hours"`
}

func (r *TimeSheetRepository) CreateSheet(sheet *timesheets_models.TimeSheet) error {
	if sheet.ID == uuid.Nil {
		sheet.ID = uuid.New()
	}
	if sheet.CreatedAt.IsZero() {
		sheet.CreatedAt = time.Now().UTC()
	}
	if sheet.Status == "" {
		sheet.Status = timesheets_enums.SheetStatusDraft
	}
	sheet.UpdatedAt = sheet.CreatedAt

	return storage.GetDb().Create(sheet).Error
}

func (r *TimeSheetRepository) GetSheetByID(sheetID uuid.UUID) (*timesheets_models.TimeSheet, error) {
	var sheet timesheets_models.TimeSheet

	if err := storage.GetDb().Where("id = ?", sheetID).First(&sheet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &sheet, nil
}

func (r *TimeSheetRepository) GetSheetsByOrganization(
	organizationID uuid.UUID,
	projectID *uuid.UUID,
) ([]*timesheets_models.TimeSheet, error) {
	query := storage.GetDb().Where("organization_id = ?", organizationID)

	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var sheets []*timesheets_models.TimeSheet

	err := query.Order("created_at DESC").Find(&sheets).Error

	return sheets, err
}

func (r *TimeSheetRepository) UpdateSheet(sheet *timesheets_models.TimeSheet) error {
	sheet.UpdatedAt = time.Now().UTC()

	return storage.GetDb().Save(sheet).Error
}

// DeleteSheet removes a sheet and disassociates its entries. Entries survive
// sheet deletion, only the membership is cleared.
func (r *TimeSheetRepository) DeleteSheet(sheetID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&timeentries_models.TimeEntry{}).
			Where("time_sheet_id = ?", sheetID).
			Update("time_sheet_id", nil).Error
		if err != nil {
			return fmt.Errorf("failed to disassociate entries: %w", err)
		}

		if err := tx.Delete(&timesheets_models.TimeSheet{}, sheetID).Error; err != nil {
			return fmt.Errorf("failed to delete time sheet: %w", err)
		}

		return nil
	})
}

// errEntryClaimed aborts the claim transaction so a partial assignment never
// survives a conflict.
var errEntryClaimed = errors.New("entry claimed by another sheet")

// AddEntries assigns the entries to the sheet all or nothing. The WHERE
// clause matches entries with no current sheet plus entries already on this
// sheet, so a retry of the same request is idempotent. When another sheet
// claimed any of the entries concurrently the transaction rolls back and
// false is returned.
func (r *TimeSheetRepository) AddEntries(sheetID uuid.UUID, entryIDs []uuid.UUID) (bool, error) {
	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&timeentries_models.TimeEntry{}).
			Where("id IN ? AND (time_sheet_id IS NULL OR time_sheet_id = ?)", entryIDs, sheetID).
			Update("time_sheet_id", sheetID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected != int64(len(entryIDs)) {
			return errEntryClaimed
		}

		return nil
	})
	if errors.Is(err, errEntryClaimed) {
		return false, nil
	}

	return err == nil, err
}

// RemoveEntry detaches one non-approved entry from the sheet. Returns false
// when the entry is not on the sheet or is approved.
func (r *TimeSheetRepository) RemoveEntry(sheetID uuid.UUID, entryID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Model(&timeentries_models.TimeEntry{}).
		Where("id = ? AND time_sheet_id = ? AND status <> ?",
			entryID, sheetID, timeentries_enums.EntryStatusApproved).
		Update("time_sheet_id", nil)

	return result.RowsAffected > 0, result.Error
}

// UpdateStatusIf flips the sheet status only when it still holds the
// expected value. extra carries transition-specific columns such as the
// rejection reason.
func (r *TimeSheetRepository) UpdateStatusIf(
	sheetID uuid.UUID,
	from timesheets_enums.SheetStatus,
	to timesheets_enums.SheetStatus,
	extra map[string]any,
) (bool, error) {
	updates := map[string]any{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	for column, value := range extra {
		updates[column] = value
	}

	result := storage.GetDb().
		Model(&timesheets_models.TimeSheet{}).
		Where("id = ? AND status = ?", sheetID, from).
		Updates(updates)

	return result.RowsAffected > 0, result.Error
}

// RevertToDraft returns the sheet to draft and resets every member entry to
// pending with its review marks cleared, in one transaction. Returns false
// when the sheet already left the expected status.
func (r *TimeSheetRepository) RevertToDraft(
	sheetID uuid.UUID,
	from timesheets_enums.SheetStatus,
) (bool, error) {
	reverted := false

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&timesheets_models.TimeSheet{}).
			Where("id = ? AND status = ?", sheetID, from).
			Updates(map[string]any{
				"status":           timesheets_enums.SheetStatusDraft,
				"rejection_reason": "",
				"updated_at":       time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to revert sheet: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return nil
		}

		err := tx.
			Model(&timeentries_models.TimeEntry{}).
			Where("time_sheet_id = ?", sheetID).
			Updates(map[string]any{
				"status":            timeentries_enums.EntryStatusPending,
				"status_changed_at": nil,
				"status_changed_by": nil,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to reset entry statuses: %w", err)
		}

		reverted = true

		return nil
	})

	return reverted, err
}

// GetReviewCounts scans the member entries of a sheet once and returns the
// aggregate used for canApproveSheet and the summary read model.
func (r *TimeSheetRepository) GetReviewCounts(sheetID uuid.UUID) (*ReviewCounts, error) {
	var counts ReviewCounts

	err := storage.GetDb().
		Table("time_entries").
		Select(`
			COUNT(*) as total_entries,
			COUNT(*) FILTER (WHERE status = ?) as pending_entries,
			COUNT(*) FILTER (WHERE status = ?) as approved_entries,
			COUNT(*) FILTER (WHERE status = ?) as questioned_entries,
			COALESCE(SUM(hours), 0) as total_hours,
			COALESCE(SUM(hours) FILTER (WHERE status = ?), 0) as approved_hours,
			COALESCE(SUM(hours) FILTER (WHERE billed), 0) as billed_hours`,
			timeentries_enums.EntryStatusPending,
			timeentries_enums.EntryStatusApproved,
			timeentries_enums.EntryStatusQuestioned,
			timeentries_enums.EntryStatusApproved).
		Where("time_sheet_id = ?", sheetID).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan review counts: %w", err)
	}

	return &counts, nil
}
