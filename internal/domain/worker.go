package domain

import "time"

// Worker is a member of the shared capacity pool. WorkingDays uses ISO
// weekday numbers (1=Monday .. 7=Sunday).
type Worker struct {
	ID            string
	Name          string
	DailyCapacity float64
	WorkingDays   []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedulable reports whether the worker can receive allocation at all.
// A worker without a capacity budget or a calendar cannot be planned.
func (w *Worker) Schedulable() bool {
	return w != nil && w.DailyCapacity > 0 && len(w.WorkingDays) > 0
}

// WorksOn reports whether the ISO weekday (1=Monday .. 7=Sunday) is in the
// worker's calendar.
func (w *Worker) WorksOn(isoWeekday int) bool {
	for _, d := range w.WorkingDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}

// DisplayName prefers the human name and falls back to the ID.
func (w *Worker) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.ID
}
