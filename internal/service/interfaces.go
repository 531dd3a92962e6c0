package service

import (
	"context"

	"github.com/avilev/boardwalk/internal/contract"
	"github.com/avilev/boardwalk/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	AssignWorker(ctx context.Context, projectID, workerID string) error
}

type WorkerService interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	// Move transitions a task to a new status and appends the transition to
	// the movement log. The log is what later anchors real schedule dates.
	Move(ctx context.Context, id string, to domain.TaskStatus) error
}

type ScheduleService interface {
	Compute(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	ProjectCount int
	WorkerCount  int
	TaskCount    int
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, path string) (*ImportResult, error)
}
