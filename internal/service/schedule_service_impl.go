package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/avilev/boardwalk/internal/contract"
	"github.com/avilev/boardwalk/internal/domain"
	"github.com/avilev/boardwalk/internal/repository"
	"github.com/avilev/boardwalk/internal/scheduler"
)

type scheduleServiceImpl struct {
	projects repository.ProjectRepo
	workers  repository.WorkerRepo
	tasks    repository.TaskRepo
	log      zerolog.Logger
}

// NewScheduleService creates the schedule computation service.
func NewScheduleService(
	projects repository.ProjectRepo,
	workers repository.WorkerRepo,
	tasks repository.TaskRepo,
	log zerolog.Logger,
) ScheduleService {
	return &scheduleServiceImpl{projects: projects, workers: workers, tasks: tasks, log: log}
}

// Compute loads a full snapshot, runs the scheduler across every project,
// and shapes the result for the requested projects. The whole universe is
// always scheduled: filtering only affects the response, never the shared
// capacity ledger.
func (s *scheduleServiceImpl) Compute(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	started := time.Now()

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workers: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	result := scheduler.Schedule(scheduler.Snapshot{
		Projects: projects,
		Workers:  workers,
		Tasks:    tasks,
		Now:      now,
	})

	resp := s.shapeResponse(result, projects, workers, tasks, req.ProjectIDs, now)

	entries, warnings := 0, 0
	for _, p := range resp.Projects {
		entries += len(p.Entries)
		warnings += len(p.Warnings)
	}
	s.log.Debug().
		Dur("elapsed", time.Since(started)).
		Int("projects", len(resp.Projects)).
		Int("entries", entries).
		Int("warnings", warnings).
		Msg("schedule computed")

	return resp, nil
}

func (s *scheduleServiceImpl) shapeResponse(
	result scheduler.Result,
	projects []*domain.Project,
	workers []*domain.Worker,
	tasks []*domain.Task,
	projectIDs []string,
	now time.Time,
) *contract.ScheduleResponse {
	wanted := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	workerNames := make(map[string]string, len(workers))
	for _, w := range workers {
		workerNames[w.ID] = w.DisplayName()
	}
	taskTitles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		taskTitles[t.ID] = t.Title
	}

	resp := &contract.ScheduleResponse{GeneratedAt: now}
	for _, ps := range result.Projects {
		if len(wanted) > 0 && !wanted[ps.ProjectID] {
			continue
		}
		out := contract.ProjectSchedule{
			ProjectID:   ps.ProjectID,
			ProjectName: projectNames[ps.ProjectID],
			Entries:     make([]contract.ScheduleEntry, 0, len(ps.Entries)),
			Warnings:    ps.Warnings,
		}
		if out.Warnings == nil {
			out.Warnings = []string{}
		}
		for _, e := range ps.Entries {
			entry := contract.FromEntry(e)
			entry.TaskTitle = taskTitles[e.TaskID]
			if e.AssignedTo != nil {
				entry.AssignedName = workerNames[*e.AssignedTo]
			}
			out.Entries = append(out.Entries, entry)
		}
		resp.Projects = append(resp.Projects, out)
	}
	return resp
}
