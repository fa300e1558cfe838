package projects_dto

import (
	"time"

	users_enums "orilla/internal/features/users/enums"

	"github.com/google/uuid"
)

type AddMemberStatus string

const (
	AddStatusInvited AddMemberStatus = "INVITED"
	AddStatusAdded   AddMemberStatus = "ADDED"
)

// Project DTOs
type CreateProjectRequestDTO struct {
	OrganizationID uuid.UUID  `json:"organizationId" binding:"required"`
	AccountID      *uuid.UUID `json:"accountId"`
	Name           string     `json:"name"           binding:"required,min=1,max=255"`
	Description    string     `json:"description"    binding:"max=1024"`
	BudgetHours    float64    `json:"budgetHours"    binding:"min=0"`
}

type UpdateProjectRequestDTO struct {
	AccountID   *uuid.UUID `json:"accountId"`
	Name        string     `json:"name"        binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=1024"`
	BudgetHours float64    `json:"budgetHours" binding:"min=0"`
}

type ProjectResponseDTO struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organizationId"`
	AccountID      *uuid.UUID `json:"accountId,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	BudgetHours    float64    `json:"budgetHours"`
	CreatedAt      time.Time  `json:"createdAt"`

	// User's role in this project (populated when fetching for specific user)
	UserRole *users_enums.ProjectRole `json:"userRole,omitempty"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

// Membership DTOs
type AddMemberRequestDTO struct {
	Email string                  `json:"email" binding:"required,email"`
	Role  users_enums.ProjectRole `json:"role"  binding:"required"`
}

type AddMemberResponseDTO struct {
	Status AddMemberStatus `json:"status"`
}

type ChangeMemberRoleRequestDTO struct {
	Role users_enums.ProjectRole `json:"role" binding:"required"`
}

type TransferOwnershipRequestDTO struct {
	NewOwnerEmail string `json:"newOwnerEmail" binding:"required,email"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"userId"`
	Email     string                  `json:"email"` // Populated from user join
	Role      users_enums.ProjectRole `json:"role"`
	CreatedAt time.Time               `json:"createdAt"`
}

type GetMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}
