package projects_repositories

import (
	"errors"
	"time"

	projects_models "orilla/internal/features/projects/models"
	"orilla/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	return storage.GetDb().Save(project).Error
}

func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Delete(&projects_models.Project{}, projectID).Error
}

func (r *ProjectRepository) GetAllProjects() ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().Order("created_at DESC").Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) CountProjectsByOrganization(organizationID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.Project{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error

	return count, err
}

func (r *ProjectRepository) CountProjectsByAccount(accountID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.Project{}).
		Where("account_id = ?", accountID).
		Count(&count).Error

	return count, err
}
