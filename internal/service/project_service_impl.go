package service

import (
	"context"
	"fmt"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/avilev/boardwalk/internal/repository"
)

type projectServiceImpl struct {
	projects repository.ProjectRepo
	workers  repository.WorkerRepo
}

// NewProjectService creates the project CRUD service.
func NewProjectService(projects repository.ProjectRepo, workers repository.WorkerRepo) ProjectService {
	return &projectServiceImpl{projects: projects, workers: workers}
}

func (s *projectServiceImpl) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return s.projects.Create(ctx, p)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectServiceImpl) Update(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return s.projects.Update(ctx, p)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectServiceImpl) AssignWorker(ctx context.Context, projectID, workerID string) error {
	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		return fmt.Errorf("worker %s: %w", workerID, err)
	}
	return s.projects.AssignWorker(ctx, projectID, workerID)
}
