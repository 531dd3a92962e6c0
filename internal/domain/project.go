package domain

import "time"

type Project struct {
	ID   string
	Name string

	// StartDate is required for scheduling; a project without one is
	// excluded from every run with a warning.
	StartDate *time.Time

	// EndDate only flags overrun. It never blocks scheduling.
	EndDate *time.Time

	// AssignedWorkers is the preferred candidate pool for tasks in this
	// project that have no fixed assignee.
	AssignedWorkers []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayID returns a short identifier for warning and log output.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// DisplayName prefers the name and falls back to the short ID.
func (p *Project) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.DisplayID()
}
