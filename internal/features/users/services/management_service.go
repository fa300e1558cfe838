package users_services

import (
	"errors"
	"fmt"
	"time"

	users_enums "orilla/internal/features/users/enums"
	users_interfaces "orilla/internal/features/users/interfaces"
	users_models "orilla/internal/features/users/models"
	users_repositories "orilla/internal/features/users/repositories"

	"github.com/google/uuid"
)

type UserManagementService struct {
	userRepository *users_repositories.UserRepository
	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserManagementService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserManagementService) GetUsers(
	currentUser *users_models.User,
	limit, offset int,
	beforeCreatedAt *time.Time,
) ([]*users_models.User, int64, error) {
	if !currentUser.CanManageUsers() {
		return nil, 0, errors.New("insufficient permissions to list users")
	}

	return s.userRepository.GetUsers(limit, offset, beforeCreatedAt)
}

func (s *UserManagementService) GetUserProfile(
	userID uuid.UUID,
	requestedBy *users_models.User,
) (*users_models.User, error) {
	// Users can view their own profile, admins can view any profile
	if userID != requestedBy.ID && !requestedBy.CanManageUsers() {
		return nil, errors.New("insufficient permissions to view user profile")
	}

	return s.userRepository.GetUserByID(userID)
}

func (s *UserManagementService) DeactivateUser(userID uuid.UUID, deactivatedBy *users_models.User) error {
	if !deactivatedBy.CanManageUsers() {
		return errors.New("insufficient permissions to deactivate users")
	}

	if userID == deactivatedBy.ID {
		return errors.New("cannot deactivate your own account")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	// Only a super admin can deactivate admin accounts
	if user.Role.IsSystemAdmin() && deactivatedBy.Role != users_enums.UserRoleSuperAdmin {
		return errors.New("only a super admin can deactivate admin accounts")
	}

	if err := s.userRepository.UpdateUserStatus(userID, users_enums.UserStatusInactive); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User deactivated: %s", user.Email),
			&deactivatedBy.ID,
			nil,
		)
	}

	return nil
}

func (s *UserManagementService) ActivateUser(userID uuid.UUID, activatedBy *users_models.User) error {
	if !activatedBy.CanManageUsers() {
		return errors.New("insufficient permissions to activate users")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role.IsSystemAdmin() && activatedBy.Role != users_enums.UserRoleSuperAdmin {
		return errors.New("only a super admin can activate admin accounts")
	}

	if err := s.userRepository.UpdateUserStatus(userID, users_enums.UserStatusActive); err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User activated: %s", user.Email),
			&activatedBy.ID,
			nil,
		)
	}

	return nil
}

func (s *UserManagementService) ChangeUserRole(
	userID uuid.UUID,
	newRole users_enums.UserRole,
	changedBy *users_models.User,
) error {
	if !changedBy.CanManageUsers() {
		return errors.New("insufficient permissions to change user roles")
	}

	if !newRole.IsValid() {
		return errors.New("invalid user role")
	}

	if userID == changedBy.ID {
		return errors.New("cannot change your own role")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	// Promotions to or demotions from admin roles are reserved for super admins
	if (newRole.IsSystemAdmin() || user.Role.IsSystemAdmin()) && changedBy.Role != users_enums.UserRoleSuperAdmin {
		return errors.New("only a super admin can promote or demote admin users")
	}

	if newRole == users_enums.UserRoleSuperAdmin {
		return errors.New("super admin role cannot be granted")
	}

	if err := s.userRepository.UpdateUserRole(userID, newRole); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User role changed: %s from %s to %s", user.Email, user.Role, newRole),
			&changedBy.ID,
			nil,
		)
	}

	return nil
}
