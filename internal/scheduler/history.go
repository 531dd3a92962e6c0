package scheduler

import (
	"math"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

// HistoricalInterval derives a task's real observed interval from its
// movement log instead of simulating one. The rules per status:
//
//   - active: start = last move into active; end = start plus the estimated
//     remaining duration when a worker and story points are known, otherwise
//     now as a provisional end.
//   - in_review and done: start = last move into active, end = last move
//     into in_review. The effort ended when the work entered review, not at
//     the final close.
//   - not_started (and anything else): no real interval.
//
// When a non-initial status lacks the required transitions in the log, no
// interval is returned and the caller falls back to simulation.
func HistoricalInterval(t *domain.Task, w *domain.Worker, now time.Time) (*Interval, bool) {
	switch t.Status {
	case domain.TaskActive:
		startedAt := t.LastEnteredStatus(domain.TaskActive)
		if startedAt == nil {
			return nil, false
		}
		start := Day(*startedAt)

		if w.Schedulable() && t.StoryPoints > 0 {
			days := int(math.Ceil(t.StoryPoints / w.DailyCapacity))
			return &Interval{Start: start, End: start.AddDate(0, 0, days)}, true
		}
		// In-flight work with no estimate: provisionally ends today.
		return &Interval{Start: start, End: MaxDay(start, now)}, true

	case domain.TaskInReview, domain.TaskDone:
		startedAt := t.LastEnteredStatus(domain.TaskActive)
		reviewedAt := t.LastEnteredStatus(domain.TaskInReview)
		if startedAt == nil || reviewedAt == nil {
			return nil, false
		}
		return &Interval{Start: Day(*startedAt), End: Day(*reviewedAt)}, true

	default:
		return nil, false
	}
}
