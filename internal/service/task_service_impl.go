package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/avilev/boardwalk/internal/repository"
)

type taskServiceImpl struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	log      zerolog.Logger
}

// NewTaskService creates the task service.
func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo, log zerolog.Logger) TaskService {
	return &taskServiceImpl{tasks: tasks, projects: projects, log: log}
}

func (s *taskServiceImpl) Create(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		return fmt.Errorf("project %s: %w", t.ProjectID, err)
	}
	if t.Status == "" {
		t.Status = domain.TaskNotStarted
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskServiceImpl) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskServiceImpl) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskServiceImpl) Update(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// Move transitions a task to a new status and appends the transition to the
// movement log. Moving to the current status is a no-op.
func (s *taskServiceImpl) Move(ctx context.Context, id string, to domain.TaskStatus) error {
	if !domain.ValidTaskStatuses[string(to)] {
		return fmt.Errorf("unknown status %q", to)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.Status == to {
		return nil
	}

	m := domain.StatusChange{From: t.Status, To: to, At: time.Now().UTC()}
	t.Status = to
	if err := s.tasks.Update(ctx, t); err != nil {
		return err
	}
	if err := s.tasks.AppendMovement(ctx, id, m); err != nil {
		return err
	}
	s.log.Debug().
		Str("task", t.DisplayID()).
		Str("from", string(m.From)).
		Str("to", string(m.To)).
		Msg("task moved")
	return nil
}

func validateTask(t *domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.ProjectID == "" {
		return fmt.Errorf("task project is required")
	}
	if t.StoryPoints < 0 {
		return fmt.Errorf("story points cannot be negative")
	}
	if t.Status != "" && !domain.ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("unknown status %q", t.Status)
	}
	return nil
}
