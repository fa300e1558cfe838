package organizations_models

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	// BudgetHours caps the hours tracked against this organisation per
	// billing period; zero means no budget is set.
	BudgetHours float64   `json:"budgetHours" gorm:"column:budget_hours"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
