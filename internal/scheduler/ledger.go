package scheduler

import (
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// Ledger tracks, per worker and calendar day, the story points already
// committed within one scheduling run. Commitments only ever grow and a
// single day never exceeds the worker's daily capacity. The ledger is
// rebuilt from scratch on every run; it is a value, not a service.
type Ledger struct {
	booked map[string]map[string]float64
}

// NewLedger returns an empty capacity ledger.
func NewLedger() *Ledger {
	return &Ledger{booked: make(map[string]map[string]float64)}
}

// Committed returns the points already booked for the worker on the given day.
func (l *Ledger) Committed(workerID string, day time.Time) float64 {
	return l.booked[workerID][Day(day).Format(dayKeyLayout)]
}

// Allocate books up to points on the given day, clamped to the headroom left
// under capacity. It returns the amount actually booked, which may be zero.
func (l *Ledger) Allocate(workerID string, day time.Time, capacity, points float64) float64 {
	if points <= 0 || capacity <= 0 {
		return 0
	}
	key := Day(day).Format(dayKeyLayout)
	headroom := capacity - l.booked[workerID][key]
	if headroom <= 0 {
		return 0
	}
	amount := points
	if amount > headroom {
		amount = headroom
	}
	if l.booked[workerID] == nil {
		l.booked[workerID] = make(map[string]float64)
	}
	l.booked[workerID][key] += amount
	return amount
}

// Clone returns an independent copy, used for what-if simulation without
// committing to the shared ledger.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	for workerID, days := range l.booked {
		copied := make(map[string]float64, len(days))
		for k, v := range days {
			copied[k] = v
		}
		c.booked[workerID] = copied
	}
	return c
}

// DebitInterval books an already-observed commitment: points spread evenly
// across the worker's working days inside [start, end]. Historical intervals
// are debited so later simulated tasks for the same worker start after them.
// Days with no headroom absorb nothing; the observed interval stands either
// way, so leftover points are not carried further.
func (l *Ledger) DebitInterval(w *domain.Worker, start, end time.Time, points float64) {
	if !w.Schedulable() || points <= 0 {
		return
	}
	days := CountWorkingDays(start, end, w.WorkingDays)
	if days == 0 {
		return
	}
	perDay := points / float64(days)
	for day := Day(start); !day.After(Day(end)); day = day.AddDate(0, 0, 1) {
		if IsWorkingDay(day, w.WorkingDays) {
			l.Allocate(w.ID, day, w.DailyCapacity, perDay)
		}
	}
}
