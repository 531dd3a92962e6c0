package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

var fixtureSeq atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%04d", prefix, fixtureSeq.Add(1))
}

// FixtureTime is a stable anchor (a Monday) for deterministic fixtures.
var FixtureTime = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// ProjectOption mutates a fixture project.
type ProjectOption func(*domain.Project)

// WithEndDate sets the project deadline.
func WithEndDate(end time.Time) ProjectOption {
	return func(p *domain.Project) { p.EndDate = &end }
}

// WithoutStartDate clears the start date, producing an unschedulable project.
func WithoutStartDate() ProjectOption {
	return func(p *domain.Project) { p.StartDate = nil }
}

// WithWorkers sets the project's preferred worker pool.
func WithWorkers(ids ...string) ProjectOption {
	return func(p *domain.Project) { p.AssignedWorkers = ids }
}

// NewTestProject builds a project starting at FixtureTime.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	start := FixtureTime
	p := &domain.Project{
		ID:        nextID("proj"),
		Name:      name,
		StartDate: &start,
		CreatedAt: FixtureTime,
		UpdatedAt: FixtureTime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestWorker builds a weekday worker with the given capacity.
func NewTestWorker(name string, capacity float64) *domain.Worker {
	return &domain.Worker{
		ID:            nextID("worker"),
		Name:          name,
		DailyCapacity: capacity,
		WorkingDays:   []int{1, 2, 3, 4, 5},
		CreatedAt:     FixtureTime,
		UpdatedAt:     FixtureTime,
	}
}

// TaskOption mutates a fixture task.
type TaskOption func(*domain.Task)

// WithDependencies sets the task's dependency list.
func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) { t.Dependencies = ids }
}

// WithAssignee fixes the task on a worker.
func WithAssignee(workerID string) TaskOption {
	return func(t *domain.Task) { t.AssignedTo = &workerID }
}

// WithPriority sets the numeric priority rank.
func WithPriority(p float64) TaskOption {
	return func(t *domain.Task) { t.Priority = &p }
}

// WithStatus sets the task status.
func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

// WithMovements sets the task's movement log.
func WithMovements(moves ...domain.StatusChange) TaskOption {
	return func(t *domain.Task) { t.Movements = moves }
}

// NewTestTask builds a not-started task in the given project.
func NewTestTask(projectID, title string, points float64, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:          nextID("task"),
		ProjectID:   projectID,
		Title:       title,
		Status:      domain.TaskNotStarted,
		StoryPoints: points,
		CreatedAt:   FixtureTime.Add(time.Duration(fixtureSeq.Load()) * time.Minute),
		UpdatedAt:   FixtureTime,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
