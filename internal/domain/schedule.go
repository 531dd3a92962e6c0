package domain

import "time"

// ScheduleEntry is the computed placement for one task. Start and End are
// nil when the task could not be placed.
type ScheduleEntry struct {
	TaskID     string
	Start      *time.Time
	End        *time.Time
	AssignedTo *string

	// Simulated marks a worker chosen by best-fit search rather than a
	// fixed assignee.
	Simulated bool

	// Real marks dates derived from the movement log rather than simulation.
	Real bool

	// NeedsAssignment marks a task no worker/time combination could absorb.
	NeedsAssignment bool
}

// ProjectSchedule is the per-project scheduling result: entries for every
// task that reached the scheduler plus human-readable warnings.
type ProjectSchedule struct {
	ProjectID string
	Entries   []ScheduleEntry
	Warnings  []string
}
