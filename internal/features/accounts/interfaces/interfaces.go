package accounts_interfaces

import (
	"github.com/google/uuid"
)

// AccountDeletionListener lets dependent features veto account removal.
type AccountDeletionListener interface {
	OnBeforeAccountDeletion(accountID uuid.UUID) error
}
