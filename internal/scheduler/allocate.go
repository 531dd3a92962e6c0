package scheduler

import (
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

// maxPlacementDays bounds the forward walk when placing a task. A task whose
// effort cannot be absorbed within a year of calendar days is reported as
// unschedulable rather than looping further.
const maxPlacementDays = 365

// Interval is a placed task's first and last day of effort, at day
// granularity.
type Interval struct {
	Start time.Time
	End   time.Time
}

// PlaceTask walks the worker's calendar forward from the first working day at
// or after earliestStart, booking the task's remaining effort into whatever
// headroom each working day offers. Partially booked days are used: a day
// with half a point of headroom absorbs half a point.
//
// Returns the interval from the first day effort was placed to the last, and
// commits the allocation to the ledger. Returns nil — with nothing committed
// beyond what was already booked — when the worker cannot absorb the full
// effort within the placement bound.
func PlaceTask(led *Ledger, w *domain.Worker, earliestStart time.Time, points float64) *Interval {
	if !w.Schedulable() || points <= 0 {
		return nil
	}

	first := FirstWorkingDay(earliestStart, w.WorkingDays)
	if first == nil {
		return nil
	}

	// Dry-run on a clone so a failed placement leaves the shared ledger
	// untouched.
	trial := led.Clone()
	remaining := points
	var start, end *time.Time

	day := *first
	for i := 0; i < maxPlacementDays && remaining > 1e-9; i++ {
		if IsWorkingDay(day, w.WorkingDays) {
			booked := trial.Allocate(w.ID, day, w.DailyCapacity, remaining)
			if booked > 0 {
				if start == nil {
					d := day
					start = &d
				}
				d := day
				end = &d
				remaining -= booked
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	if remaining > 1e-9 || start == nil || end == nil {
		return nil
	}

	// Replay the successful placement onto the real ledger.
	led.replayInterval(trial, w.ID, *start, *end)
	return &Interval{Start: *start, End: *end}
}

// replayInterval copies the trial ledger's bookings for one worker across
// [start, end] onto l. Only the delta over l's existing bookings is applied.
func (l *Ledger) replayInterval(trial *Ledger, workerID string, start, end time.Time) {
	for day := Day(start); !day.After(Day(end)); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyLayout)
		delta := trial.booked[workerID][key] - l.booked[workerID][key]
		if delta <= 0 {
			continue
		}
		if l.booked[workerID] == nil {
			l.booked[workerID] = make(map[string]float64)
		}
		l.booked[workerID][key] += delta
	}
}
