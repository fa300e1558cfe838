package organizations_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrganizationRequestDTO struct {
	Name        string  `json:"name"        binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	BudgetHours float64 `json:"budgetHours" binding:"min=0"`
}

type UpdateOrganizationRequestDTO struct {
	Name        string  `json:"name"        binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	BudgetHours float64 `json:"budgetHours" binding:"min=0"`
}

type OrganizationResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BudgetHours float64   `json:"budgetHours"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListOrganizationsResponseDTO struct {
	Organizations []OrganizationResponseDTO `json:"organizations"`
}
