package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID  `json:"id"             gorm:"column:id"`
	OrganizationID uuid.UUID  `json:"organizationId" gorm:"column:organization_id"`
	AccountID      *uuid.UUID `json:"accountId"      gorm:"column:account_id"`
	Name           string     `json:"name"           gorm:"column:name"`
	Description    string     `json:"description"    gorm:"column:description"`
	BudgetHours    float64    `json:"budgetHours"    gorm:"column:budget_hours"`
	CreatedAt      time.Time  `json:"createdAt"      gorm:"column:created_at"`

	// Used for caching non-existent projects
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
