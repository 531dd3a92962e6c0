package domain

import "time"

// StatusChange is one entry in a task's append-only movement log.
type StatusChange struct {
	From TaskStatus
	To   TaskStatus
	At   time.Time
}

type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Status      TaskStatus
	StoryPoints float64

	// Scheduling inputs
	Dependencies []string
	AssignedTo   *string
	Priority     *float64

	Movements []StatusChange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedulable reports whether the task carries enough effort data to be
// placed on a calendar. Zero or negative story points exclude it.
func (t *Task) Schedulable() bool {
	return t.StoryPoints > 0
}

// LastEnteredStatus returns the timestamp of the most recent transition into
// the given status, or nil if the movement log never records one.
func (t *Task) LastEnteredStatus(status TaskStatus) *time.Time {
	var found *time.Time
	for i := range t.Movements {
		m := t.Movements[i]
		if m.To == status && (found == nil || m.At.After(*found)) {
			at := m.At
			found = &at
		}
	}
	return found
}

// DisplayID returns a short identifier for warning and log output.
func (t *Task) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}

// DisplayName prefers the title and falls back to the short ID.
func (t *Task) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	return t.DisplayID()
}
