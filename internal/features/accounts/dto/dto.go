package accounts_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAccountRequestDTO struct {
	OrganizationID uuid.UUID `json:"organizationId" binding:"required"`
	Name           string    `json:"name"           binding:"required,min=1,max=128"`
	Description    string    `json:"description"    binding:"max=1024"`
	BudgetHours    float64   `json:"budgetHours"    binding:"min=0"`
}

type UpdateAccountRequestDTO struct {
	Name        string  `json:"name"        binding:"required,min=1,max=128"`
	Description string  `json:"description" binding:"max=1024"`
	BudgetHours float64 `json:"budgetHours" binding:"min=0"`
}

type AccountResponseDTO struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	BudgetHours    float64   `json:"budgetHours"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ListAccountsResponseDTO struct {
	Accounts []AccountResponseDTO `json:"accounts"`
}
