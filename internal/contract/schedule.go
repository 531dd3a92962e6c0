// Package contract defines the JSON-facing request and response shapes for
// schedule computation. Presentation layers consume these instead of the
// domain types.
package contract

import (
	"time"

	"github.com/avilev/boardwalk/internal/domain"
)

const dateLayout = "2006-01-02"

type ScheduleRequest struct {
	// ProjectIDs limits the response to the given projects. Empty means
	// all projects. The computation itself always spans every project:
	// the shared capacity ledger needs the full picture.
	ProjectIDs []string `json:"project_ids,omitempty"`

	// Now overrides the reference time, mainly for reproducible runs.
	Now *time.Time `json:"now,omitempty"`
}

type ScheduleEntry struct {
	TaskID          string  `json:"task_id"`
	TaskTitle       string  `json:"task_title,omitempty"`
	Start           *string `json:"start_date"`
	End             *string `json:"end_date"`
	AssignedTo      *string `json:"assigned_to"`
	AssignedName    string  `json:"assigned_name,omitempty"`
	Simulated       bool    `json:"is_simulated"`
	Real            bool    `json:"is_real"`
	NeedsAssignment bool    `json:"needs_assignment"`
}

type ProjectSchedule struct {
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name,omitempty"`
	Entries     []ScheduleEntry `json:"entries"`
	Warnings    []string        `json:"warnings"`
}

type ScheduleResponse struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Projects    []ProjectSchedule `json:"projects"`
}

// FormatDate renders a nullable time as a nullable ISO date string.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// FromEntry converts a domain schedule entry into its wire shape.
func FromEntry(e domain.ScheduleEntry) ScheduleEntry {
	return ScheduleEntry{
		TaskID:          e.TaskID,
		Start:           FormatDate(e.Start),
		End:             FormatDate(e.End),
		AssignedTo:      e.AssignedTo,
		Simulated:       e.Simulated,
		Real:            e.Real,
		NeedsAssignment: e.NeedsAssignment,
	}
}
