package scheduler

import (
	"sort"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

// BestWorker picks a worker for a task with no fixed assignee. The project's
// preferred pool is tried first; only when no preferred candidate can absorb
// the task does the search widen to the full worker universe. Each candidate
// is simulated against a clone of the shared ledger, so nothing is committed
// here — the caller places the task on the winner afterwards.
//
// Among succeeding candidates the earliest start date wins; ties break on
// earliest end, then worker ID, keeping the choice deterministic.
func BestWorker(led *Ledger, points float64, earliestStart time.Time, preferred, universe []*domain.Worker) (*domain.Worker, *Interval) {
	if w, iv := bestInPool(led, points, earliestStart, preferred); w != nil {
		return w, iv
	}
	return bestInPool(led, points, earliestStart, universe)
}

func bestInPool(led *Ledger, points float64, earliestStart time.Time, pool []*domain.Worker) (*domain.Worker, *Interval) {
	candidates := make([]*domain.Worker, 0, len(pool))
	for _, w := range pool {
		if w.Schedulable() {
			candidates = append(candidates, w)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	var bestWorker *domain.Worker
	var bestIv *Interval
	for _, w := range candidates {
		iv := PlaceTask(led.Clone(), w, earliestStart, points)
		if iv == nil {
			continue
		}
		if bestIv == nil || earlierPlacement(iv, bestIv) {
			bestWorker, bestIv = w, iv
		}
	}
	return bestWorker, bestIv
}

func earlierPlacement(a, b *Interval) bool {
	if c := CompareDays(a.Start, b.Start); c != 0 {
		return c < 0
	}
	return CompareDays(a.End, b.End) < 0
}
