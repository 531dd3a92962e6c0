package importer

import (
	"fmt"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/google/uuid"
)

// ImportedSnapshot holds converted domain objects ready for persistence.
type ImportedSnapshot struct {
	Projects []*domain.Project
	Workers  []*domain.Worker
	Tasks    []*domain.Task
}

// Convert transforms a validated ImportSchema into domain objects. Call
// ValidateImportSchema first; Convert assumes the schema is valid. File-local
// refs become generated UUIDs; references between sections are rewritten to
// match. Task depends_on refs that resolve nowhere are kept verbatim so the
// scheduler can report them.
func Convert(schema *ImportSchema) (*ImportedSnapshot, error) {
	now := time.Now().UTC()
	snap := &ImportedSnapshot{}

	workerIDs := make(map[string]string, len(schema.Workers))
	for _, w := range schema.Workers {
		id := uuid.New().String()
		workerIDs[w.Ref] = id
		snap.Workers = append(snap.Workers, &domain.Worker{
			ID:            id,
			Name:          domain.CoalesceStr(w.Name, w.Ref),
			DailyCapacity: w.DailyCapacity,
			WorkingDays:   w.WorkingDays,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	projectIDs := make(map[string]string, len(schema.Projects))
	for _, p := range schema.Projects {
		id := uuid.New().String()
		projectIDs[p.Ref] = id

		startDate, err := parseOptionalDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("project %q start_date: %w", p.Ref, err)
		}
		endDate, err := parseOptionalDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("project %q end_date: %w", p.Ref, err)
		}

		workers := make([]string, 0, len(p.Workers))
		for _, ref := range p.Workers {
			if wid, ok := workerIDs[ref]; ok {
				workers = append(workers, wid)
			}
		}

		snap.Projects = append(snap.Projects, &domain.Project{
			ID:              id,
			Name:            p.Name,
			StartDate:       startDate,
			EndDate:         endDate,
			AssignedWorkers: workers,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	taskIDs := make(map[string]string, len(schema.Tasks))
	for _, t := range schema.Tasks {
		taskIDs[t.Ref] = uuid.New().String()
	}

	for _, t := range schema.Tasks {
		deps := make([]string, 0, len(t.DependsOn))
		for _, ref := range t.DependsOn {
			if tid, ok := taskIDs[ref]; ok {
				deps = append(deps, tid)
			} else {
				deps = append(deps, ref)
			}
		}

		var assignedTo *string
		if t.AssignedTo != nil {
			if wid, ok := workerIDs[*t.AssignedTo]; ok {
				assignedTo = &wid
			}
		}

		status := domain.TaskNotStarted
		if t.Status != "" {
			status = domain.TaskStatus(t.Status)
		}

		createdAt := now
		if t.CreatedAt != nil && *t.CreatedAt != "" {
			parsed, err := time.Parse(time.RFC3339, *t.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("task %q created_at: %w", t.Ref, err)
			}
			createdAt = parsed
		}

		movements := make([]domain.StatusChange, 0, len(t.Movements))
		for _, m := range t.Movements {
			at, err := time.Parse(time.RFC3339, m.At)
			if err != nil {
				return nil, fmt.Errorf("task %q movement: %w", t.Ref, err)
			}
			movements = append(movements, domain.StatusChange{
				From: domain.TaskStatus(m.From),
				To:   domain.TaskStatus(m.To),
				At:   at,
			})
		}

		snap.Tasks = append(snap.Tasks, &domain.Task{
			ID:           taskIDs[t.Ref],
			ProjectID:    projectIDs[t.Project],
			Title:        domain.CoalesceStr(t.Title, t.Ref),
			Status:       status,
			StoryPoints:  t.StoryPoints,
			Dependencies: deps,
			AssignedTo:   assignedTo,
			Priority:     t.Priority,
			Movements:    movements,
			CreatedAt:    createdAt,
			UpdatedAt:    now,
		})
	}

	return snap, nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
