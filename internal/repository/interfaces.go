package repository

import (
	"context"

	"github.com/avilev/boardwalk/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	AssignWorker(ctx context.Context, projectID, workerID string) error
	UnassignWorker(ctx context.Context, projectID, workerID string) error
}

type WorkerRepo interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	// List returns all tasks with dependencies and movement logs attached.
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	// AppendMovement records one status transition in the append-only log.
	AppendMovement(ctx context.Context, taskID string, m domain.StatusChange) error
}
