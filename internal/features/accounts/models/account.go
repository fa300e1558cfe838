package accounts_models

import (
	"time"

	"github.com/google/uuid"
)

// Account groups projects of a single customer inside an organization.
type Account struct {
	ID             uuid.UUID `json:"id"             gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `json:"organizationId" gorm:"type:uuid;not null;index"`
	Name           string    `json:"name"           gorm:"not null"`
	Description    string    `json:"description"`
	BudgetHours    float64   `json:"budgetHours"    gorm:"default:0"`
	CreatedAt      time.Time `json:"createdAt"      gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt"      gorm:"autoUpdateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
