package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

// Snapshot is the read-only input to one scheduling run. The scheduler is a
// pure function of the snapshot: it performs no I/O, holds no state between
// runs, and two runs over identical snapshots produce identical results.
type Snapshot struct {
	Projects []*domain.Project
	Tasks    []*domain.Task
	Workers  []*domain.Worker

	// Now anchors provisional end dates for in-flight work without an
	// estimate. Zero means time.Now.
	Now time.Time
}

// Result aggregates per-project schedules. Projects excluded up front (no
// start date) still appear, with empty entries and a warning.
type Result struct {
	Projects []domain.ProjectSchedule
}

// ByProject returns the schedule for one project, or nil.
func (r *Result) ByProject(projectID string) *domain.ProjectSchedule {
	for i := range r.Projects {
		if r.Projects[i].ProjectID == projectID {
			return &r.Projects[i]
		}
	}
	return nil
}

// placement is one scheduled task in the run-wide index, consulted for
// dependency end dates across project boundaries.
type placement struct {
	interval *Interval
	workerID *string
}

// run carries the shared mutable state of one scheduling pass. Projects are
// processed strictly in start-date order so the shared ledger observes
// commitments in the right sequence; this ordering is a correctness
// requirement, not an optimization.
type run struct {
	now       time.Time
	workers   map[string]*domain.Worker
	universe  []*domain.Worker
	tasksByID map[string]*domain.Task
	ledger    *Ledger
	index     map[string]placement
	// realEnd tracks, per worker, the latest end among reconciled
	// (historically observed) tasks. Later simulated work for the same
	// worker starts after it.
	realEnd map[string]time.Time
}

// Schedule computes start and end dates for every task across all projects,
// sharing one capacity ledger so a worker's commitments in an earlier
// project reduce availability in later ones. It never fails: malformed input
// degrades into warnings on the affected project.
func Schedule(snap Snapshot) Result {
	now := snap.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	r := &run{
		now:       now,
		workers:   make(map[string]*domain.Worker, len(snap.Workers)),
		tasksByID: make(map[string]*domain.Task, len(snap.Tasks)),
		ledger:    NewLedger(),
		index:     make(map[string]placement),
		realEnd:   make(map[string]time.Time),
	}
	for _, w := range snap.Workers {
		r.workers[w.ID] = w
		r.universe = append(r.universe, w)
	}
	sort.Slice(r.universe, func(i, j int) bool { return r.universe[i].ID < r.universe[j].ID })
	for _, t := range snap.Tasks {
		r.tasksByID[t.ID] = t
	}

	tasksByProject := make(map[string][]*domain.Task)
	for _, t := range snap.Tasks {
		tasksByProject[t.ProjectID] = append(tasksByProject[t.ProjectID], t)
	}

	var schedulable []*domain.Project
	var excluded []domain.ProjectSchedule
	for _, p := range snap.Projects {
		if p.StartDate == nil {
			excluded = append(excluded, domain.ProjectSchedule{
				ProjectID: p.ID,
				Warnings:  []string{fmt.Sprintf("project %q has no start date and was not scheduled", p.DisplayName())},
			})
			continue
		}
		schedulable = append(schedulable, p)
	}
	sort.SliceStable(schedulable, func(i, j int) bool {
		if c := CompareDays(*schedulable[i].StartDate, *schedulable[j].StartDate); c != 0 {
			return c < 0
		}
		return schedulable[i].ID < schedulable[j].ID
	})

	result := Result{}
	for _, p := range schedulable {
		result.Projects = append(result.Projects, r.scheduleProject(p, tasksByProject[p.ID]))
	}
	result.Projects = append(result.Projects, excluded...)
	return result
}

func (r *run) scheduleProject(p *domain.Project, all []*domain.Task) domain.ProjectSchedule {
	ps := domain.ProjectSchedule{ProjectID: p.ID}

	// Tasks with no effort estimate and no observed progress have nothing
	// to place and nothing to reconcile.
	var tasks []*domain.Task
	for _, t := range all {
		if t.Schedulable() || t.Status.Started() {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return ps
	}

	graph, dangling := BuildGraph(tasks)
	for _, ref := range dangling {
		t := r.tasksByID[ref.TaskID]
		if _, known := r.tasksByID[ref.DependsOn]; known {
			// Cross-project edge: valid, resolved through the shared
			// index when computing the earliest start.
			continue
		}
		ps.Warnings = append(ps.Warnings,
			fmt.Sprintf("task %q depends on unknown task %q; the dependency was ignored", t.DisplayName(), ref.DependsOn))
	}

	if cycle := DetectCycle(graph); cycle != nil {
		names := make([]string, len(cycle))
		for i, id := range cycle {
			names[i] = r.tasksByID[id].DisplayName()
		}
		ps.Warnings = append(ps.Warnings,
			fmt.Sprintf("dependency cycle (%s) in project %q; scheduling aborted for this project",
				strings.Join(names, " -> "), p.DisplayName()))
		return ps
	}

	ordered, dropped := TopologicalOrder(tasks, graph)
	for _, t := range dropped {
		ps.Warnings = append(ps.Warnings,
			fmt.Sprintf("task %q could not be placed in dependency order and was not scheduled", t.DisplayName()))
	}

	for _, t := range ordered {
		r.scheduleTask(p, t, &ps)
	}
	return ps
}

func (r *run) scheduleTask(p *domain.Project, t *domain.Task, ps *domain.ProjectSchedule) {
	var worker *domain.Worker
	if t.AssignedTo != nil {
		w, ok := r.workers[*t.AssignedTo]
		if !ok {
			ps.Warnings = append(ps.Warnings,
				fmt.Sprintf("task %q is assigned to unknown worker %q and was not scheduled", t.DisplayName(), *t.AssignedTo))
			ps.Entries = append(ps.Entries, domain.ScheduleEntry{TaskID: t.ID, NeedsAssignment: true})
			return
		}
		worker = w
	}

	// Work already past not_started keeps its observed dates; nothing is
	// re-simulated.
	if iv, ok := HistoricalInterval(t, worker, r.now); ok {
		start, end := iv.Start, iv.End
		ps.Entries = append(ps.Entries, domain.ScheduleEntry{
			TaskID:     t.ID,
			Start:      &start,
			End:        &end,
			AssignedTo: t.AssignedTo,
			Real:       true,
		})
		r.index[t.ID] = placement{interval: iv, workerID: t.AssignedTo}
		if worker != nil {
			r.ledger.DebitInterval(worker, iv.Start, iv.End, t.StoryPoints)
			if prev, ok := r.realEnd[worker.ID]; !ok || CompareDays(iv.End, prev) > 0 {
				r.realEnd[worker.ID] = iv.End
			}
		}
		r.warnPastDeadline(p, t, iv.End, ps)
		return
	}

	if !t.Schedulable() {
		// Started task whose movement log is incomplete and which has no
		// estimate to simulate from.
		ps.Warnings = append(ps.Warnings,
			fmt.Sprintf("task %q has no story points and no usable history; it was not scheduled", t.DisplayName()))
		return
	}

	earliest := r.earliestStart(p, t, worker)

	simulated := false
	if worker == nil {
		worker, _ = BestWorker(r.ledger, t.StoryPoints, earliest, r.preferredPool(p), r.universe)
		if worker == nil {
			ps.Warnings = append(ps.Warnings,
				fmt.Sprintf("no worker can take on task %q; it needs manual assignment", t.DisplayName()))
			ps.Entries = append(ps.Entries, domain.ScheduleEntry{TaskID: t.ID, NeedsAssignment: true})
			return
		}
		simulated = true
	}

	iv := PlaceTask(r.ledger, worker, earliest, t.StoryPoints)
	if iv == nil {
		ps.Warnings = append(ps.Warnings,
			fmt.Sprintf("worker %q cannot absorb task %q within the scheduling window", worker.DisplayName(), t.DisplayName()))
		ps.Entries = append(ps.Entries, domain.ScheduleEntry{TaskID: t.ID, AssignedTo: t.AssignedTo, NeedsAssignment: true})
		return
	}

	workerID := worker.ID
	start, end := iv.Start, iv.End
	ps.Entries = append(ps.Entries, domain.ScheduleEntry{
		TaskID:     t.ID,
		Start:      &start,
		End:        &end,
		AssignedTo: &workerID,
		Simulated:  simulated,
	})
	r.index[t.ID] = placement{interval: iv, workerID: &workerID}
	r.warnPastDeadline(p, t, iv.End, ps)
}

// earliestStart is the latest of: the project start, the day after the
// worker's last observed (historical) commitment, and the day after each
// scheduled dependency's end. Dependencies without a scheduled interval
// impose no constraint.
func (r *run) earliestStart(p *domain.Project, t *domain.Task, worker *domain.Worker) time.Time {
	earliest := Day(*p.StartDate)
	if worker != nil {
		if end, ok := r.realEnd[worker.ID]; ok {
			earliest = MaxDay(earliest, AddDays(end, 1))
		}
	}
	for _, dep := range t.Dependencies {
		if pl, ok := r.index[dep]; ok && pl.interval != nil {
			earliest = MaxDay(earliest, AddDays(pl.interval.End, 1))
		}
	}
	return earliest
}

func (r *run) preferredPool(p *domain.Project) []*domain.Worker {
	pool := make([]*domain.Worker, 0, len(p.AssignedWorkers))
	for _, id := range p.AssignedWorkers {
		if w, ok := r.workers[id]; ok {
			pool = append(pool, w)
		}
	}
	return pool
}

func (r *run) warnPastDeadline(p *domain.Project, t *domain.Task, end time.Time, ps *domain.ProjectSchedule) {
	if p.EndDate != nil && CompareDays(end, *p.EndDate) > 0 {
		ps.Warnings = append(ps.Warnings,
			fmt.Sprintf("task %q ends %s, past the project deadline %s",
				t.DisplayName(), end.Format(dayKeyLayout), Day(*p.EndDate).Format(dayKeyLayout)))
	}
}
