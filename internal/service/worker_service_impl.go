package service

import (
	"context"
	"fmt"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/avilev/boardwalk/internal/repository"
)

type workerServiceImpl struct {
	workers repository.WorkerRepo
}

// NewWorkerService creates the worker CRUD service.
func NewWorkerService(workers repository.WorkerRepo) WorkerService {
	return &workerServiceImpl{workers: workers}
}

func (s *workerServiceImpl) Create(ctx context.Context, w *domain.Worker) error {
	if err := validateWorker(w); err != nil {
		return err
	}
	return s.workers.Create(ctx, w)
}

func (s *workerServiceImpl) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *workerServiceImpl) List(ctx context.Context) ([]*domain.Worker, error) {
	return s.workers.List(ctx)
}

func (s *workerServiceImpl) Update(ctx context.Context, w *domain.Worker) error {
	if err := validateWorker(w); err != nil {
		return err
	}
	return s.workers.Update(ctx, w)
}

func (s *workerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.workers.Delete(ctx, id)
}

func validateWorker(w *domain.Worker) error {
	if w.Name == "" {
		return fmt.Errorf("worker name is required")
	}
	if w.DailyCapacity < 0 {
		return fmt.Errorf("daily capacity cannot be negative")
	}
	for _, d := range w.WorkingDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("working day %d out of range 1..7", d)
		}
	}
	return nil
}
