package timeentries_repositories

import (
	"time"

	timeentries_dto "orilla/internal/features/timeentries/dto"
	timeentries_models "orilla/internal/features/timeentries/models"
	"orilla/internal/storage"

	"github.com/google/uuid"
)

type EntryMessageRepository struct{}

func (r *EntryMessageRepository) CreateMessage(message *timeentries_models.EntryMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(message).Error
}

// GetMessagesByEntry returns the full discussion trail of an entry in the
// order it was written.
func (r *EntryMessageRepository) GetMessagesByEntry(
	entryID uuid.UUID,
) ([]*timeentries_dto.EntryMessageResponseDTO, error) {
	var messages []*timeentries_dto.EntryMessageResponseDTO

	err := storage.GetDb().
		Table("entry_messages em").
		Select("em.id, em.entry_id, em.author_id, u.email as author_email, em.content, em.status_change, em.created_at").
		Joins("JOIN users u ON em.author_id = u.id").
		Where("em.entry_id = ?", entryID).
		Order("em.created_at ASC, em.id ASC").
		Scan(&messages).Error

	return messages, err
}

func (r *EntryMessageRepository) GetMessagesByEntries(
	entryIDs []uuid.UUID,
) ([]*timeentries_models.EntryMessage, error) {
	if len(entryIDs) == 0 {
		return []*timeentries_models.EntryMessage{}, nil
	}

	var messages []*timeentries_models.EntryMessage

	err := storage.GetDb().
		Where("entry_id IN ?", entryIDs).
		Order("created_at ASC, id ASC").
		Find(&messages).Error

	return messages, err
}
