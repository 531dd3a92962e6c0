package domain

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskActive     TaskStatus = "active"
	TaskInReview   TaskStatus = "in_review"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
	TaskCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"not_started": true, "active": true, "in_review": true,
	"done": true, "blocked": true, "cancelled": true,
}

// Started reports whether the status is past not_started. Blocked and
// cancelled tasks are treated as not started for scheduling purposes.
func (s TaskStatus) Started() bool {
	switch s {
	case TaskActive, TaskInReview, TaskDone:
		return true
	default:
		return false
	}
}
