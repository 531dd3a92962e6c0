package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestPlaceTask_Invariants_CapacityNeverExceeded property-tests the core
// ledger invariant: for every worker and every day, committed points never
// exceed daily capacity, across arbitrary sequences of placements.
func TestPlaceTask_Invariants_CapacityNeverExceeded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		led := NewLedger()

		numWorkers := rng.Intn(3) + 1
		workers := make([]*domain.Worker, numWorkers)
		for i := range workers {
			numDays := rng.Intn(5) + 1
			daySet := make([]int, 0, numDays)
			seen := make(map[int]bool)
			for len(daySet) < numDays {
				d := rng.Intn(7) + 1
				if !seen[d] {
					seen[d] = true
					daySet = append(daySet, d)
				}
			}
			workers[i] = &domain.Worker{
				ID:            fmt.Sprintf("w-%d", i),
				DailyCapacity: float64(rng.Intn(4) + 1),
				WorkingDays:   daySet,
			}
		}

		start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		numTasks := rng.Intn(10) + 1
		var placed []*Interval
		for i := 0; i < numTasks; i++ {
			w := workers[rng.Intn(numWorkers)]
			points := float64(rng.Intn(12)+1) / 2 // 0.5–6.0
			earliest := start.AddDate(0, 0, rng.Intn(20))
			if iv := PlaceTask(led, w, earliest, points); iv != nil {
				placed = append(placed, iv)

				// Invariant: interval ordered and starts at or after earliest.
				assert.False(t, iv.End.Before(iv.Start),
					"trial %d: interval end before start", trial)
				assert.True(t, !iv.Start.Before(Day(earliest)),
					"trial %d: placement before earliest start", trial)
			}
		}

		// Invariant: no day for any worker exceeds capacity.
		for _, w := range workers {
			for day := start; day.Before(start.AddDate(1, 1, 0)); day = day.AddDate(0, 0, 1) {
				committed := led.Committed(w.ID, day)
				assert.LessOrEqual(t, committed, w.DailyCapacity+1e-9,
					"trial %d: worker %s overbooked on %s (%.2f > %.2f)",
					trial, w.ID, day.Format("2006-01-02"), committed, w.DailyCapacity)
				if !IsWorkingDay(day, w.WorkingDays) {
					assert.Zero(t, committed,
						"trial %d: worker %s booked on a non-working day", trial, w.ID)
				}
			}
		}
	}
}
