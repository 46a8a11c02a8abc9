package services

import (
	"github.com/go-faster/errors"

	"jobmetric.dev/internal/models"
)

// ProjectService handles project showcase operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in their original order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "project %q", id)
}
