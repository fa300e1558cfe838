package timeentries_models

import (
	"time"

	timeentries_enums "orilla/internal/features/timeentries/enums"

	"github.com/google/uuid"
)

// EntryMessage is one message in the append-only discussion trail of a time
// entry. Messages are never edited or deleted.
type EntryMessage struct {
	ID       uuid.UUID `json:"id"       gorm:"column:id"`
	EntryID  uuid.UUID `json:"entryId"  gorm:"column:entry_id"`
	AuthorID uuid.UUID `json:"authorId" gorm:"column:author_id"`
	Content  string    `json:"content"  gorm:"column:content"`

	// StatusChange tags messages written as part of a review decision.
	StatusChange *timeentries_enums.EntryStatus `json:"statusChange" gorm:"column:status_change"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (EntryMessage) TableName() string {
	return "entry_messages"
}
