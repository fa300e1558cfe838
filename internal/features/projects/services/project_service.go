package projects_services

import (
	"fmt"
	"time"

	"orilla/internal/apperrors"
	accounts_services "orilla/internal/features/accounts/services"
	audit_logs "orilla/internal/features/audit_logs"
	organizations_services "orilla/internal/features/organizations/services"
	projects_dto "orilla/internal/features/projects/dto"
	projects_interfaces "orilla/internal/features/projects/interfaces"
	projects_models "orilla/internal/features/projects/models"
	projects_repositories "orilla/internal/features/projects/repositories"
	users_enums "orilla/internal/features/users/enums"
	users_models "orilla/internal/features/users/models"
	users_services "orilla/internal/features/users/services"
	cache_utils "orilla/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ProjectService struct {
	projectRepository        *projects_repositories.ProjectRepository
	membershipRepository     *projects_repositories.MembershipRepository
	userService              *users_services.UserService
	organizationService      *organizations_services.OrganizationService
	accountService           *accounts_services.AccountService
	auditLogService          *audit_logs.AuditLogService
	settingsService          *users_services.SettingsService
	projectDeletionListeners []projects_interfaces.ProjectDeletionListener

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) AddProjectDeletionListener(listener projects_interfaces.ProjectDeletionListener) {
	s.projectDeletionListeners = append(s.projectDeletionListeners, listener)
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if !creator.CanCreateProjects(settings) {
		return nil, apperrors.NewPermissionDenied("insufficient permissions to create projects")
	}

	organization, err := s.organizationService.GetOrganizationRecord(request.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if organization == nil {
		return nil, apperrors.NewNotFound("organization")
	}

	if request.AccountID != nil {
		account, err := s.accountService.GetAccountRecord(*request.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account: %w", err)
		}
		if account == nil {
			return nil, apperrors.NewNotFound("account")
		}
		if account.OrganizationID != request.OrganizationID {
			return nil, apperrors.NewValidation("account belongs to a different organization")
		}
	}

	project := &projects_models.Project{
		ID:             uuid.New(),
		OrganizationID: request.OrganizationID,
		AccountID:      request.AccountID,
		Name:           request.Name,
		Description:    request.Description,
		BudgetHours:    request.BudgetHours,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	membership := &projects_models.ProjectMembership{
		UserID:    creator.ID,
		ProjectID: project.ID,
		Role:      users_enums.ProjectRoleOwner,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create project membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	ownerRole := users_enums.ProjectRoleOwner
	return &projects_dto.ProjectResponseDTO{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		AccountID:      project.AccountID,
		Name:           project.Name,
		Description:    project.Description,
		BudgetHours:    project.BudgetHours,
		CreatedAt:      project.CreatedAt,
		UserRole:       &ownerRole,
	}, nil
}

func (s *ProjectService) GetProject(projectID uuid.UUID, user *users_models.User) (*projects_models.Project, error) {
	isCanAccess, _, err := s.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !isCanAccess {
		return nil, apperrors.NewPermissionDenied("insufficient permissions to view project")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apperrors.NewNotFound("project")
	}

	return project, nil
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.membershipRepository.GetProjectsWithRolesByUserID(user.Role, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	canManage, err := s.CanUserManageProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, apperrors.NewPermissionDenied("insufficient permissions to update project")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apperrors.NewNotFound("project")
	}

	if request.AccountID != nil {
		account, err := s.accountService.GetAccountRecord(*request.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account: %w", err)
		}
		if account == nil {
			return nil, apperrors.NewNotFound("account")
		}
		if account.OrganizationID != project.OrganizationID {
			return nil, apperrors.NewValidation("account belongs to a different organization")
		}
	}

	project.AccountID = request.AccountID
	project.Name = request.Name
	project.Description = request.Description
	project.BudgetHours = request.BudgetHours

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return project, nil
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	if !user.IsSystemAdmin() {
		userProjectRole, err := s.GetUserProjectRole(projectID, user.ID)
		if err != nil {
			return fmt.Errorf("failed to get user role: %w", err)
		}

		if userProjectRole == nil || *userProjectRole != users_enums.ProjectRoleOwner {
			return apperrors.NewPermissionDenied("only project owner or admin can delete project")
		}
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return apperrors.NewNotFound("project")
	}

	for _, listener := range s.projectDeletionListeners {
		if err := listener.OnBeforeProjectDeletion(projectID); err != nil {
			return err
		}
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *ProjectService) GetUserProjectRole(projectID uuid.UUID, userID uuid.UUID) (*users_enums.ProjectRole, error) {
	return s.membershipRepository.GetUserProjectRole(projectID, userID)
}

// GetProjectRolesForUsers resolves project roles in bulk, used when deciding
// whether reviewers or clients already interacted with a time sheet.
func (s *ProjectService) GetProjectRolesForUsers(
	projectID uuid.UUID,
	userIDs []uuid.UUID,
) (map[uuid.UUID]users_enums.ProjectRole, error) {
	return s.membershipRepository.GetProjectRolesForUsers(projectID, userIDs)
}

func (s *ProjectService) CanUserAccessProject(
	projectID uuid.UUID,
	user *users_models.User,
) (bool, *users_enums.ProjectRole, error) {
	if user.IsSystemAdmin() {
		adminRole := users_enums.ProjectRoleOwner
		return true, &adminRole, nil
	}

	role, err := s.membershipRepository.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return false, nil, nil
	}

	return role != nil, role, nil
}

func (s *ProjectService) CanUserManageProject(projectID uuid.UUID, user *users_models.User) (bool, error) {
	if user.IsSystemAdmin() {
		return true, nil
	}

	role, err := s.membershipRepository.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return false, err
	}

	if role == nil {
		return false, nil
	}

	return *role == users_enums.ProjectRoleOwner, nil
}

func (s *ProjectService) GetProjectAuditLogs(
	projectID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	isCanAccess, _, err := s.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !isCanAccess {
		return nil, apperrors.NewPermissionDenied("insufficient permissions to view project audit logs")
	}

	return s.auditLogService.GetProjectAuditLogs(projectID, request)
}

func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	// Tier 1: check cache
	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, apperrors.NewNotFound("project")
		}

		return cachedProject, nil
	}

	// Tier 2: database lookup with singleflight protection (prevents thundering herd)
	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	if project == nil {
		// Cache the missing project to prevent future DB hits
		invalidCachedProject := &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		}
		s.projectCacheUtil.Set(projectIDStr, invalidCachedProject)
		return nil, apperrors.NewNotFound("project")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}

func (s *ProjectService) GetAllProjects() ([]*projects_models.Project, error) {
	return s.projectRepository.GetAllProjects()
}

// OnBeforeOrganizationDeletion blocks removing organizations that still own
// projects.
func (s *ProjectService) OnBeforeOrganizationDeletion(organizationID uuid.UUID) error {
	count, err := s.projectRepository.CountProjectsByOrganization(organizationID)
	if err != nil {
		return fmt.Errorf("failed to count organization projects: %w", err)
	}

	if count > 0 {
		return apperrors.NewValidation("organization still has projects")
	}

	return nil
}

// OnBeforeAccountDeletion blocks removing accounts that still own projects.
func (s *ProjectService) OnBeforeAccountDeletion(accountID uuid.UUID) error {
	count, err := s.projectRepository.CountProjectsByAccount(accountID)
	if err != nil {
		return fmt.Errorf("failed to count account projects: %w", err)
	}

	if count > 0 {
		return apperrors.NewValidation("account still has projects")
	}

	return nil
}
